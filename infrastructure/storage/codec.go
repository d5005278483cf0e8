package storage

import (
	"ext-data/errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Records are stored as protobuf Struct messages. 64-bit integers and
// timestamps are kept as strings since Struct numbers are float64.

func encode(fields map[string]any) ([]byte, error) {
	record, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build record: %w", err)
	}
	return proto.Marshal(record)
}

func decode(data []byte) (*structpb.Struct, error) {
	var record structpb.Struct
	if err := proto.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &record, nil
}

func stringField(record *structpb.Struct, name string) string {
	return record.GetFields()[name].GetStringValue()
}

func intField(record *structpb.Struct, name string) int {
	return int(record.GetFields()[name].GetNumberValue())
}

func uint64Field(record *structpb.Struct, name string) (uint64, error) {
	raw := stringField(record, name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

func stringsField(record *structpb.Struct, name string) []string {
	values := record.GetFields()[name].GetListValue().GetValues()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.GetStringValue())
	}
	return out
}

var (
	epoch       = time.Unix(0, 0)
	lastKeyNano = time.Unix(0, math.MaxInt64)
)

// keyNanos returns t as the non-negative nanosecond count used in ordered keys.
// Only instants between 1970 and 2262 fit the 19-digit padding.
func keyNanos(t time.Time) (int64, error) {
	if t.Before(epoch) || t.After(lastKeyNano) {
		return 0, fmt.Errorf("%w: %s", errors.ErrInvalidTimestamp, t.Format(time.RFC3339Nano))
	}
	return t.UnixNano(), nil
}

func formatTime(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 10)
}

func timeField(record *structpb.Struct, name string) (time.Time, error) {
	nanos, err := strconv.ParseInt(stringField(record, name), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return time.Unix(0, nanos).UTC(), nil
}
