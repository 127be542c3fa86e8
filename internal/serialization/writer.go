package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/born-ml/mega/internal/tensor"
)

// Writer encodes named tensors in .mega format.
type Writer struct {
	w   io.Writer
	now func() time.Time
}

// NewWriter creates a writer that encodes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, now: time.Now}
}

// Write encodes tensors and optional metadata as one archive.
// Tensors are laid out in name order so equal inputs produce equal data sections.
func (w *Writer) Write(tensors map[string]*tensor.Tensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name, t := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("tensor %q is nil", name)
		}
		names = append(names, name)
	}
	slices.Sort(names)

	header := Header{
		FormatVersion: FormatVersion,
		WriterVersion: writerVersion,
		CreatedAt:     w.now().UTC(),
		Tensors:       make([]TensorMeta, 0, len(names)),
		Metadata:      metadata,
	}

	var data []byte
	for _, name := range names {
		t := tensors[name]
		raw := t.Buffer().Bytes()
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   name,
			DType:  t.DType().String(),
			Shape:  []int(t.Shape().Clone()),
			Offset: int64(len(data)),
			Size:   int64(len(raw)),
		})
		data = append(data, raw...)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	var flags uint32
	if len(metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(data)))
	checksum := ComputeChecksum(data)
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header JSON: %w", err)
	}
	if pad := padding(int64(FixedHeaderSize + len(headerJSON))); pad > 0 {
		if _, err := w.w.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// Save writes tensors to a new file at path.
func Save(path string, tensors map[string]*tensor.Tensor, metadata map[string]string) (err error) {
	//nolint:gosec // G304: path is caller supplied by design of a save API
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()
	return NewWriter(file).Write(tensors, metadata)
}
