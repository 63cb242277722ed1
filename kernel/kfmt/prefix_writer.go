package kfmt

import "io"

// PrefixWriter is an io.Writer that wraps another io.Writer and injects a
// prefix at the beginning of each line. The hal package uses it to tag driver
// init output with the driver name.
type PrefixWriter struct {
	// A writer where all writes get sent to. If nil, writes go to the
	// same place as the output of Printf.
	Sink io.Writer

	// The prefix injected at the beginning of each line.
	Prefix []byte

	bytesAfterPrefix int
}

// Write writes p to the sink injecting the prefix at the start of each line.
// The returned byte count does not include injected prefixes.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var (
		written    int
		startIndex int
	)

	if len(p) == 0 {
		return 0, nil
	}

	if w.bytesAfterPrefix == 0 {
		w.write(w.Prefix)
	}

	for curIndex, b := range p {
		if b != '\n' {
			continue
		}

		n, err := w.write(p[startIndex : curIndex+1])
		written += n
		if err != nil {
			return written, err
		}

		if curIndex+1 != len(p) {
			w.write(w.Prefix)
		}
		w.bytesAfterPrefix = 0
		startIndex = curIndex + 1
	}

	if startIndex < len(p) {
		n, err := w.write(p[startIndex:])
		written += n
		w.bytesAfterPrefix += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

func (w *PrefixWriter) write(p []byte) (int, error) {
	switch {
	case w.Sink != nil:
		return w.Sink.Write(p)
	case outputSink != nil:
		return outputSink.Write(p)
	default:
		return earlyPrintBuffer.Write(p)
	}
}
