// Package serialization provides the .mega archive format for saving and
// loading named tensors.
//
//	Format Structure:
//	  0x00 [4 bytes: Magic "MEGA"]
//	  0x04 [4 bytes: Version (uint32 LE)]
//	  0x08 [4 bytes: Flags (uint32 LE)]
//	  0x0C [4 bytes: Reserved]
//	  0x10 [8 bytes: Header Size (uint64 LE)]
//	  0x18 [8 bytes: Data Size (uint64 LE)]
//	  0x20 [32 bytes: SHA-256 of the data section]
//	  0x40 [Header: JSON metadata]
//	       [Tensor data: raw element bytes, 64-byte aligned]
//
// Element bytes are written in host order; archives are portable between
// little-endian machines.
//
// Example usage:
//
//	err := serialization.Save("weights.mega", map[string]*tensor.Tensor{"w": w}, nil)
//	...
//	archive, err := serialization.Load("weights.mega")
//	w := archive.Tensors["w"]
package serialization
