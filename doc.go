// Package wavsplit slices blobs of concatenated WAV files back into
// individual files, and packs a directory of WAV files into such a blob.
//
// A blob carries no index. Chunk boundaries are the offsets where a RIFF/WAVE
// header ("RIFF", a 4-byte size, "WAVE") appears; each chunk runs from one
// header up to the next one, or to the end of the blob. Chunks are named
// positionally from a name list, a text file holding one "name.wav" token per
// line:
//
//   - Signatures / LocateSignatures find header offsets.
//   - SplitIntoChunks turns offsets into contiguous byte ranges.
//   - ParseNameList reads the name list.
//   - AssignAndWrite pairs chunks with names and writes them out.
//
// The inverse path is Concatenate, which joins the sorted .wav files of a
// directory, and DescribeDirectory, which renders the matching name list in
// an ls-like layout that ParseNameList reads back.
//
// By default the RIFF size field is never consulted, so payload bytes that
// happen to look like a header start a new chunk. WithStrict enables size
// validation for blobs where that matters.
package wavsplit
