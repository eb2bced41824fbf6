package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
)

const cursorPrefix = "id"

// EncodeCursor creates an opaque token pointing after the row with the given id.
// Ledger entries are append-only, so the id alone orders them.
func EncodeCursor(lastID int64) string {
	tokenStr := fmt.Sprintf("%s|%d", cursorPrefix, lastID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token created by EncodeCursor. A nil or empty token
// means "from the start" and yields 0.
func DecodeCursor(token *string) (int64, error) {
	if token == nil || *token == "" {
		return 0, nil
	}
	decodedBytes, err := base64.RawURLEncoding.DecodeString(*token)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid pagination token format (base64 decode)", apperrors.ErrValidation)
	}
	prefix, idStr, found := strings.Cut(string(decodedBytes), "|")
	if !found || prefix != cursorPrefix {
		return 0, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: invalid pagination token format (id parse)", apperrors.ErrValidation)
	}
	return id, nil
}

// NextToken returns the token for the page after ids, or nil when the page was
// not full and no more rows can follow.
func NextToken(ids []int64, limit int) *string {
	if limit <= 0 || len(ids) < limit {
		return nil
	}
	token := EncodeCursor(ids[len(ids)-1])
	return &token
}
