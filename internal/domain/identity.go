package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// ArticleID derives the content identity of an article from its title, author
// and raw publish timestamp. Equal inputs always produce equal ids.
func ArticleID(title, author, publishedAt string) string {
	sum := sha256.Sum256([]byte(title + "-" + author + "-" + publishedAt))
	return hex.EncodeToString(sum[:])
}
