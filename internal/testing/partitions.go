package testing

// exhaustiveLimit is the longest input Partitions splits in every possible way.
const exhaustiveLimit = 12

// Partitions returns ways to split data into non-empty chunks.
//
// Inputs up to 12 bytes are split in every possible way. Longer inputs get
// every split with at most two cut points, plus one-byte chunks. Empty data
// yields a single partition holding one empty chunk.
func Partitions(data []byte) [][][]byte {
	if len(data) == 0 {
		return [][][]byte{{{}}}
	}

	if len(data) <= exhaustiveLimit {
		return allPartitions(data)
	}

	var out [][][]byte

	out = append(out, [][]byte{data})

	for i := 1; i < len(data); i++ {
		out = append(out, [][]byte{data[:i], data[i:]})

		for j := i + 1; j < len(data); j++ {
			out = append(out, [][]byte{data[:i], data[i:j], data[j:]})
		}
	}

	return append(out, OneByteChunks(data))
}

func allPartitions(data []byte) [][][]byte {
	cuts := len(data) - 1
	out := make([][][]byte, 0, 1<<cuts)

	for mask := range 1 << cuts {
		var (
			chunks [][]byte
			start  int
		)

		for i := range cuts {
			if mask&(1<<i) != 0 {
				chunks = append(chunks, data[start:i+1])
				start = i + 1
			}
		}

		out = append(out, append(chunks, data[start:]))
	}

	return out
}

// OneByteChunks splits data into chunks of one byte each.
func OneByteChunks(data []byte) [][]byte {
	out := make([][]byte, 0, len(data))
	for i := range data {
		out = append(out, data[i:i+1])
	}

	return out
}

// WithEmpty inserts an empty chunk before every chunk and after the last one.
func WithEmpty(chunks [][]byte) [][]byte {
	out := make([][]byte, 0, 2*len(chunks)+1)
	for _, chunk := range chunks {
		out = append(out, []byte{}, chunk)
	}

	return append(out, []byte{})
}
