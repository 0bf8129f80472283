package record

import "bytes"

const (
	Delimiter = ';'
	MaxKeyLen = 100
)

// Folder receives every parsed record. The key aliases the scanned buffer
// and is only valid for the duration of the call.
type Folder interface {
	Fold(key []byte, tenths int64)
}

// Scan parses every line of data and folds it into f. offset is the position
// of data within the whole input and is only used to locate errors. A final
// line without a terminator is accepted only when atEOF is set.
func Scan(data []byte, offset int64, atEOF bool, f Folder) error {
	var pos int
	for pos < len(data) {
		rest := data[pos:]

		next := len(data)
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			if !atEOF {
				return newMalformedError(offset+int64(pos), ReasonMissingTerminator, rest)
			}
			nl = len(rest)
		} else {
			next = pos + nl + 1
		}

		line := rest[:nl]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}

		sep := bytes.IndexByte(line, Delimiter)
		switch {
		case sep < 0:
			return newMalformedError(offset+int64(pos), ReasonMissingDelimiter, line)
		case sep == 0:
			return newMalformedError(offset+int64(pos), ReasonEmptyKey, line)
		case sep > MaxKeyLen:
			return newMalformedError(offset+int64(pos), ReasonKeyTooLong, line)
		}

		temp, ok := ParseTenths(line[sep+1:])
		if !ok {
			return newMalformedError(offset+int64(pos), ReasonInvalidValue, line)
		}

		f.Fold(line[:sep], temp)
		pos = next
	}

	return nil
}
