package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an integer that also accepts numeric strings on decode, so
// `{"memberId": 7}` and `{"memberId": "7"}` both yield 7. Valid is false when
// the field was absent, null, or not coercible.
type FlexInt struct {
	Value int64
	Valid bool
}

func NewFlexInt(v int64) FlexInt {
	return FlexInt{Value: v, Valid: true}
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return nil
		}
		*f = FlexInt{Value: int64(v), Valid: true}
	case string:
		if n, ok := ParseInt(v); ok {
			*f = FlexInt{Value: n, Valid: true}
		}
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.Value, 10)), nil
}

func (f FlexInt) String() string {
	if !f.Valid {
		return "<invalid>"
	}
	return fmt.Sprintf("%d", f.Value)
}

// ParseInt parses a trimmed base-10 integer.
func ParseInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
