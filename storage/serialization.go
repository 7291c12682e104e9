// Copyright 2025 Major Mentor
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"encoding/json"
	"fmt"

	"github.com/majormentor/unigo/core"
	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Fixed-shape stored values (institutions, search docs) use hand-written MUS
// serializers. Program records keep their heterogeneous source JSON, so they
// are stored as JSON and parsed tolerantly on the way out.
var (
	// InstitutionMUS serializes InstitutionRecord values.
	InstitutionMUS institutionSer

	// SearchDocMUS serializes SearchDoc values.
	SearchDocMUS searchDocSer

	float32SliceMUS = ord.NewSliceSer[float32](raw.Float32)
)

var (
	_ mus.Serializer[core.InstitutionRecord] = institutionSer{}
	_ mus.Serializer[SearchDoc]              = searchDocSer{}
)

type institutionSer struct{}

func (institutionSer) Marshal(v core.InstitutionRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.Code, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	return n
}

func (institutionSer) Unmarshal(bs []byte) (v core.InstitutionRecord, n int, err error) {
	var n1 int
	if v.Name, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.Code, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (institutionSer) Size(v core.InstitutionRecord) int {
	return ord.String.Size(v.Name) + ord.String.Size(v.Code) + ord.String.Size(v.URL)
}

func (institutionSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = ord.String.Skip(bs); err != nil {
		return
	}
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

type searchDocSer struct{}

func (searchDocSer) Marshal(v SearchDoc, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(v.Program), bs)
	n += raw.Byte.Marshal(byte(v.Doc), bs[n:])
	n += float32SliceMUS.Marshal(v.Vector, bs[n:])
	return n
}

func (searchDocSer) Unmarshal(bs []byte) (v SearchDoc, n int, err error) {
	var (
		n1      int
		program uint64
		doc     byte
	)
	if program, n, err = varint.Uint64.Unmarshal(bs); err != nil {
		return
	}
	v.Program = core.ID(program)
	if doc, n1, err = raw.Byte.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	v.Doc = core.DocType(doc)
	v.Vector, n1, err = float32SliceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (searchDocSer) Size(v SearchDoc) int {
	return varint.Uint64.Size(uint64(v.Program)) +
		raw.Byte.Size(byte(v.Doc)) +
		float32SliceMUS.Size(v.Vector)
}

func (searchDocSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = varint.Uint64.Skip(bs); err != nil {
		return
	}
	if n1, err = raw.Byte.Skip(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	n1, err = float32SliceMUS.Skip(bs[n:])
	n += n1
	return
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(id), nil
}

// MarshalInstitution serializes an InstitutionRecord to bytes.
func MarshalInstitution(record *core.InstitutionRecord) []byte {
	buf := make([]byte, InstitutionMUS.Size(*record))
	InstitutionMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalInstitution deserializes an InstitutionRecord from bytes.
func UnmarshalInstitution(data []byte) (*core.InstitutionRecord, error) {
	record, _, err := InstitutionMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}

// MarshalSearchDoc serializes a SearchDoc to bytes.
func MarshalSearchDoc(doc *SearchDoc) []byte {
	buf := make([]byte, SearchDocMUS.Size(*doc))
	SearchDocMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalSearchDoc deserializes a SearchDoc from bytes.
func UnmarshalSearchDoc(data []byte) (*SearchDoc, error) {
	doc, _, err := SearchDocMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &doc, nil
}

// MarshalProgram serializes a ProgramRecord to bytes.
func MarshalProgram(record *core.ProgramRecord) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalProgram deserializes a ProgramRecord from bytes.
func UnmarshalProgram(data []byte) (*core.ProgramRecord, error) {
	var record core.ProgramRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}
