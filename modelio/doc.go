// Package modelio persists fitted regression coefficients in a small
// versioned binary container so a model can be reloaded later and predict
// identically.
//
// # File Layout
//
// A model file is:
//
//	magic (4 bytes) | version (1) | compression (1) | reserved (2)
//	payload length (4, little endian) | payload | xxHash64 checksum (8)
//
// The payload holds the response name, design column names, intercept flag
// and the little-endian float64 coefficient vector. It may be compressed
// with S2, LZ4 or Zstd, selected per file by the compression byte; the
// checksum always covers the uncompressed payload and is verified on load.
//
// # Usage
//
//	err := modelio.SaveFile("employed_gnp.olm", result.Coeffs(),
//	    modelio.WithCompression(modelio.CompressionZstd))
//
//	coeffs, err := modelio.LoadFile("employed_gnp.olm")
//	predicted, err := coeffs.Predict(grid)
package modelio
