package serialization

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/born-ml/mega/internal/tensor"
)

func sampleTensors(t *testing.T) map[string]*tensor.Tensor {
	t.Helper()
	a, err := tensor.FromSlice(tensor.Shape{2, 3}, tensor.Int32, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	b, err := tensor.FromSlice(tensor.Shape{3}, tensor.Float64, []float64{0.5, -1.25, 3})
	require.NoError(t, err)
	c, err := tensor.Arange(10, 15, tensor.Int64)
	require.NoError(t, err)
	return map[string]*tensor.Tensor{"weights": a, "bias": b, "index": c}
}

func encode(t *testing.T, tensors map[string]*tensor.Tensor, metadata map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	require.NoError(t, w.Write(tensors, metadata))
	return buf.Bytes()
}

func TestWriteRead(t *testing.T) {
	tensors := sampleTensors(t)
	raw := encode(t, tensors, map[string]string{"source": "test"})

	assert.Equal(t, MagicBytes, string(raw[:4]))
	assert.Equal(t, uint32(FlagHasMetadata), binary.LittleEndian.Uint32(raw[8:12]))

	archive, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, []string{"bias", "index", "weights"}, archive.Names())
	assert.Equal(t, "test", archive.Header.Metadata["source"])
	assert.Equal(t, FormatVersion, archive.Header.FormatVersion)
	for name, want := range tensors {
		got, ok := archive.Tensors[name]
		require.True(t, ok, name)
		assert.True(t, want.Equal(got), "%s: got %v, want %v", name, got, want)
	}
}

func TestDataSectionIsAligned(t *testing.T) {
	raw := encode(t, sampleTensors(t), nil)
	headerSize := int64(binary.LittleEndian.Uint64(raw[16:24])) //nolint:gosec // small test header
	dataSize := int64(binary.LittleEndian.Uint64(raw[24:32]))   //nolint:gosec // small test data

	offset := alignedDataOffset(headerSize)
	assert.Zero(t, offset%HeaderAlignment)
	assert.Equal(t, offset+dataSize, int64(len(raw)))
	assert.Zero(t, binary.LittleEndian.Uint32(raw[8:12]), "no metadata flag without metadata")
}

func TestWriteIsDeterministic(t *testing.T) {
	tensors := sampleTensors(t)
	assert.Equal(t, encode(t, tensors, nil), encode(t, tensors, nil))
}

func TestReadRejectsCorruptData(t *testing.T) {
	raw := encode(t, sampleTensors(t), nil)
	raw[len(raw)-1] ^= 0xFF

	_, err := Read(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestReadRejectsBadMagic(t *testing.T) {
	raw := encode(t, sampleTensors(t), nil)
	copy(raw, "BORN")

	_, err := Read(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	raw := encode(t, sampleTensors(t), nil)
	binary.LittleEndian.PutUint32(raw[4:8], 7)

	_, err := Read(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestReadRejectsTruncatedData(t *testing.T) {
	raw := encode(t, sampleTensors(t), nil)

	_, err := Read(bytes.NewReader(raw[:len(raw)-4]))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = Read(bytes.NewReader(raw[:10]))
	assert.Error(t, err)
}

func TestWriteRejectsBadNames(t *testing.T) {
	tensors := sampleTensors(t)
	tensors["../escape"] = tensors["bias"]

	err := NewWriter(&bytes.Buffer{}).Write(tensors, nil)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "invalid_name", verr.Type)
}

func TestValidateHeader(t *testing.T) {
	h := &Header{Tensors: []TensorMeta{
		{Name: "a", DType: "int32", Shape: []int{2}, Offset: 0, Size: 8},
		{Name: "b", DType: "int32", Shape: []int{2}, Offset: 4, Size: 8},
		{Name: "c", DType: "long", Shape: []int{1}, Offset: 12, Size: 8},
		{Name: "d", DType: "float64", Shape: []int{4}, Offset: 20, Size: 8},
		{Name: "a", DType: "float32", Shape: []int{1}, Offset: 28, Size: 4},
	}}

	err := ValidateHeader(h, 32)
	require.Error(t, err)

	types := map[string]bool{}
	for _, e := range multierr.Errors(err) {
		var verr *ValidationError
		require.True(t, errors.As(e, &verr), e.Error())
		types[verr.Type] = true
	}
	assert.True(t, types["offset_overlap"], "a and b overlap")
	assert.True(t, types["invalid_dtype"], "alias tokens are not stored")
	assert.True(t, types["size_mismatch"], "d declares the wrong size")
	assert.True(t, types["duplicate_name"], "a appears twice")
}

func TestValidateTensorOffsetsOutOfBounds(t *testing.T) {
	err := ValidateTensorOffsets([]TensorMeta{{Name: "x", Offset: 8, Size: 16}}, 16)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "out_of_bounds", verr.Type)

	err = ValidateTensorOffsets([]TensorMeta{{Name: "y", Offset: -1, Size: 4}}, 16)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "negative_offset", verr.Type)
}

func TestChecksum(t *testing.T) {
	a := ComputeChecksum([]byte("mega"))
	b := ComputeChecksum([]byte("mega"))
	c := ComputeChecksum([]byte("MEGA"))

	assert.NoError(t, ValidateChecksum(a, b))
	assert.ErrorIs(t, ValidateChecksum(a, c), ErrChecksumMismatch)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tensors.mega")
	tensors := sampleTensors(t)

	require.NoError(t, Save(path, tensors, nil))

	archive, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, archive.Tensors, len(tensors))
	assert.True(t, tensors["weights"].Equal(archive.Tensors["weights"]))

	_, err = Load(filepath.Join(t.TempDir(), "missing.mega"))
	assert.Error(t, err)
}
