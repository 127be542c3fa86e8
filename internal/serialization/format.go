package serialization

import (
	"time"

	"github.com/born-ml/mega/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "MEGA"
	FormatVersion   = 1
	HeaderAlignment = 64   // tensor data starts on a 64-byte boundary
	FixedHeaderSize = 64   // 0x40
	ChecksumSize    = 32   // SHA-256
	ChecksumOffset  = 0x20 // checksum position in the fixed header
)

// Flags for the .mega format.
const (
	FlagHasMetadata uint32 = 1 << 0
)

const writerVersion = "0.1.0"

// Header represents the JSON header in a .mega file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	WriterVersion string            `json:"writer_version"`
	CreatedAt     time.Time         `json:"created_at"`
	Tensors       []TensorMeta      `json:"tensors"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`
	DType  string `json:"dtype"`  // canonical token, e.g. "int32"
	Shape  []int  `json:"shape"`  // row-major dimensions
	Offset int64  `json:"offset"` // bytes from the start of the data section
	Size   int64  `json:"size"`   // bytes
}

// parseDType accepts only the canonical dtype tokens.
func parseDType(s string) (tensor.DataType, bool) {
	dt, err := tensor.ParseDataType(s)
	if err != nil || dt.String() != s {
		return 0, false
	}
	return dt, true
}

func alignedDataOffset(headerSize int64) int64 {
	pos := int64(FixedHeaderSize) + headerSize
	return pos + padding(pos)
}

func padding(pos int64) int64 {
	return (HeaderAlignment - pos%HeaderAlignment) % HeaderAlignment
}
