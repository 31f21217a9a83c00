package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/marginalia/core"
)

// Key prefixes for different data types
const (
	annotationPrefix     = "annrec"
	annotationPagePrefix = "annpg"
	annotationIDSeq      = "annrecseq"
	checkpointPrefix     = "chkpt"
)

// makeAnnotationKey generates a key for an annotation by ID.
func makeAnnotationKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", annotationPrefix, id))
}

// makeAnnotationPageKey generates a composite key for the page index.
// Format: prefix:documentID:page:annotationID
func makeAnnotationPageKey(document core.ID, page int, id core.ID) []byte {
	buf := makePartialAnnotationPageKey(document, page)
	// BigEndian so that keys sort by insertion order within a page
	return binary.BigEndian.AppendUint64(buf, uint64(id))
}

// makePartialAnnotationPageKey generates the index prefix of one page.
// Format: prefix:documentID:page
func makePartialAnnotationPageKey(document core.ID, page int) []byte {
	buf := makeAnnotationDocumentKey(document)
	return binary.BigEndian.AppendUint32(buf, uint32(page))
}

// makeAnnotationDocumentKey generates the index prefix of one document.
// Format: prefix:documentID
func makeAnnotationDocumentKey(document core.ID) []byte {
	buf := make([]byte, 0, len(annotationPagePrefix)+1+8+4+8)
	buf = append(buf, annotationPagePrefix...)
	buf = append(buf, ':')
	return binary.BigEndian.AppendUint64(buf, uint64(document))
}

// makeCheckpointKey generates a key for the checkpoint of a document.
func makeCheckpointKey(document core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", checkpointPrefix, document))
}
