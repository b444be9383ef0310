package content

import "bytes"

// byteOrderMark is dropped from the start of every text file.
var byteOrderMark = []byte("\ufeff")

const replacementChar = "\uFFFD"

// cleanText strips a leading byte order mark and replaces each run of
// invalid UTF-8 with U+FFFD, so nothing the loader hands out can break
// the XHTML it ends up in.
func cleanText(data []byte) []byte {
	data = bytes.TrimPrefix(data, byteOrderMark)
	return bytes.ToValidUTF8(data, []byte(replacementChar))
}
