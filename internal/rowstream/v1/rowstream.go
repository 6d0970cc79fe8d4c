// Package v1 declares the litetable.rowstream.v1 wire messages. They travel over grpc with the
// json codec from internal/codec.
package v1

// ReadRowsRequest selects the rows to stream. RowKeys and RowPrefix are mutually exclusive;
// leaving both empty streams the whole table. RowsLimit of zero means no limit.
type ReadRowsRequest struct {
	RowKeys   [][]byte `json:"rowKeys,omitzero"`
	RowPrefix []byte   `json:"rowPrefix,omitzero"`
	RowsLimit int64    `json:"rowsLimit,omitzero"`
}

func (x *ReadRowsRequest) GetRowKeys() [][]byte {
	if x != nil {
		return x.RowKeys
	}
	return nil
}

func (x *ReadRowsRequest) GetRowPrefix() []byte {
	if x != nil {
		return x.RowPrefix
	}
	return nil
}

func (x *ReadRowsRequest) GetRowsLimit() int64 {
	if x != nil {
		return x.RowsLimit
	}
	return 0
}

// ReadRowsResponse is one message of the stream.
type ReadRowsResponse struct {
	Chunks []*CellChunk `json:"chunks,omitzero"`
}

func (x *ReadRowsResponse) GetChunks() []*CellChunk {
	if x != nil {
		return x.Chunks
	}
	return nil
}

// StringValue is an optional string.
type StringValue struct {
	Value string `json:"value"`
}

// BytesValue is an optional byte string.
type BytesValue struct {
	Value []byte `json:"value"`
}

// CellChunk is a piece of a row. At most one of CommitRow and ResetRow is set.
type CellChunk struct {
	RowKey          []byte       `json:"rowKey,omitzero"`
	FamilyName      *StringValue `json:"familyName,omitzero"`
	Qualifier       *BytesValue  `json:"qualifier,omitzero"`
	TimestampMicros int64        `json:"timestampMicros,omitzero"`
	Value           []byte       `json:"value,omitzero"`
	CommitRow       bool         `json:"commitRow,omitzero"`
	ResetRow        bool         `json:"resetRow,omitzero"`
}

func (x *CellChunk) GetRowKey() []byte {
	if x != nil {
		return x.RowKey
	}
	return nil
}

func (x *CellChunk) GetFamilyName() *StringValue {
	if x != nil {
		return x.FamilyName
	}
	return nil
}

func (x *CellChunk) GetQualifier() *BytesValue {
	if x != nil {
		return x.Qualifier
	}
	return nil
}

func (x *CellChunk) GetTimestampMicros() int64 {
	if x != nil {
		return x.TimestampMicros
	}
	return 0
}

func (x *CellChunk) GetValue() []byte {
	if x != nil {
		return x.Value
	}
	return nil
}

func (x *CellChunk) GetCommitRow() bool {
	if x != nil {
		return x.CommitRow
	}
	return false
}

func (x *CellChunk) GetResetRow() bool {
	if x != nil {
		return x.ResetRow
	}
	return false
}
