package browse

import (
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

const cursorVersion = "v1"

// PageKey is the position of the last item of a page under the current sort:
// the item's sort-key value plus its identifier tiebreak.
type PageKey struct {
	Key string
	ID  string
}

// Cursor is an opaque pointer into a stably-sorted product sequence. It
// remembers the sort and a fingerprint of the filters it was issued under, so
// a cursor replayed against a different (sort, filters) partition is detected
// as out of scope rather than silently returning wrong pages.
type Cursor struct {
	sort        Sort
	fingerprint string
	key         PageKey
}

// NewCursor creates a cursor after the given page key.
func NewCursor(sort Sort, filters Filters, key PageKey) Cursor {
	return Cursor{sort: sort, fingerprint: fingerprint(filters), key: key}
}

// Key returns the last-seen page position.
func (c Cursor) Key() PageKey { return c.key }

// InScope reports whether the cursor was issued under the given sort and
// filters. Out-of-scope cursors terminate pagination instead of erroring; any
// page overlap this leniency produces is absorbed by the caller's dedup merge.
func (c Cursor) InScope(sort Sort, filters Filters) bool {
	return c.sort == sort && c.fingerprint == fingerprint(filters)
}

// Encode renders the cursor as an opaque URL-safe string.
func (c Cursor) Encode() string {
	raw := strings.Join([]string{cursorVersion, string(c.sort), c.fingerprint, c.key.Key, c.key.ID}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses an encoded cursor. Malformed input is an error the
// caller is expected to treat as end of stream, not as a failure.
func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, fmt.Errorf("decode cursor: %w", err)
	}

	// Name keys may contain the separator, so the key is rejoined from the
	// middle segments; the ID tiebreak is always the last one.
	parts := strings.Split(string(raw), "|")
	if len(parts) < 5 || parts[0] != cursorVersion {
		return Cursor{}, fmt.Errorf("decode cursor: unknown layout %q", string(raw))
	}
	if !Sort(parts[1]).IsValid() {
		return Cursor{}, fmt.Errorf("decode cursor: unknown sort %q", parts[1])
	}
	return Cursor{
		sort:        Sort(parts[1]),
		fingerprint: parts[2],
		key: PageKey{
			Key: strings.Join(parts[3:len(parts)-1], "|"),
			ID:  parts[len(parts)-1],
		},
	}, nil
}

// fingerprint condenses filters into a short stable hash for scope checks.
func fingerprint(f Filters) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(f.CategorySlug))
	_, _ = h.Write([]byte{0, boolByte(f.InStockOnly)})
	return strconv.FormatUint(uint64(h.Sum32()), 16)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
