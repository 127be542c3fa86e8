package serialization

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB
	MaxTensorCount   = 100_000
	MaxTensorNameLen = 4096
)

// ValidateTensorName rejects empty names, oversized names and names that
// could be mistaken for paths.
func ValidateTensorName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Type: "invalid_name", Details: "empty tensor name"}
	case len(name) > MaxTensorNameLen:
		return &ValidationError{
			Type:    "name_too_long",
			Tensor:  name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen),
		}
	case strings.Contains(name, ".."):
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains '..'"}
	case strings.ContainsAny(name, "/\\"):
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains path separator (/ or \\)"}
	case strings.Contains(name, "\x00"):
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains null byte"}
	}
	return nil
}

// ValidateTensorMeta checks that the dtype is known and that Size matches
// the byte size implied by Shape.
func ValidateTensorMeta(m TensorMeta) error {
	dt, ok := parseDType(m.DType)
	if !ok {
		return &ValidationError{Type: "invalid_dtype", Tensor: m.Name, Details: fmt.Sprintf("unknown dtype %q", m.DType)}
	}
	if len(m.Shape) == 0 {
		return &ValidationError{Type: "invalid_shape", Tensor: m.Name, Details: "rank 0"}
	}
	want := int64(dt.Size())
	for _, dim := range m.Shape {
		if dim <= 0 {
			return &ValidationError{Type: "invalid_shape", Tensor: m.Name, Details: fmt.Sprintf("shape %v has a non-positive dimension", m.Shape)}
		}
		if want > (1<<62)/int64(dim) {
			return &ValidationError{Type: "invalid_shape", Tensor: m.Name, Details: fmt.Sprintf("shape %v is too large", m.Shape)}
		}
		want *= int64(dim)
	}
	if m.Size != want {
		return &ValidationError{Type: "size_mismatch", Tensor: m.Name, Details: fmt.Sprintf("size %d, shape %v of %s needs %d", m.Size, m.Shape, m.DType, want)}
	}
	return nil
}

// ValidateTensorOffsets checks for negative, out-of-bounds and overlapping regions.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	sorted := slices.Clone(tensors)
	slices.SortFunc(sorted, func(a, b TensorMeta) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		default:
			return 0
		}
	})

	var err error
	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			err = multierr.Append(err, &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", t.Offset, t.Size),
			})
			continue
		}
		if t.Offset > dataSize || t.Size > dataSize-t.Offset {
			err = multierr.Append(err, &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
			})
		}
		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				err = multierr.Append(err, &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
				})
			}
		}
	}
	return err
}

// ValidateHeader validates every tensor entry and reports all problems found.
func ValidateHeader(h *Header, dataSize int64) error {
	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
		}
	}

	var err error
	seen := make(map[string]struct{}, len(h.Tensors))
	for _, t := range h.Tensors {
		if nameErr := ValidateTensorName(t.Name); nameErr != nil {
			err = multierr.Append(err, nameErr)
			continue
		}
		if _, dup := seen[t.Name]; dup {
			err = multierr.Append(err, &ValidationError{Type: "duplicate_name", Tensor: t.Name, Details: "name appears more than once"})
		}
		seen[t.Name] = struct{}{}
		err = multierr.Append(err, ValidateTensorMeta(t))
	}
	return multierr.Append(err, ValidateTensorOffsets(h.Tensors, dataSize))
}
