package backup

import (
	"testing"
	"time"
)

func TestS3Destination_ObjectKey(t *testing.T) {
	d := &S3Destination{prefix: "rollcall"}
	at := time.Date(2026, 8, 28, 9, 15, 0, 0, time.UTC)

	if got, want := d.objectKey(at), "rollcall/2026-08-28/attendance-091500.jsonl"; got != want {
		t.Errorf("objectKey = %q, want %q", got, want)
	}
}

func TestS3Destination_ObjectKeyNormalizesToUTC(t *testing.T) {
	d := &S3Destination{prefix: "rollcall"}
	// 02:15 at UTC+10 is 16:15 the previous day in UTC, so the key lands
	// under the UTC date.
	at := time.Date(2026, 8, 28, 2, 15, 0, 0, time.FixedZone("AEST", 10*3600))

	if got, want := d.objectKey(at), "rollcall/2026-08-27/attendance-161500.jsonl"; got != want {
		t.Errorf("objectKey = %q, want %q", got, want)
	}
}

func TestS3Destination_ObjectKeyEmptyPrefix(t *testing.T) {
	d := &S3Destination{}
	at := time.Date(2026, 8, 28, 9, 15, 0, 0, time.UTC)

	if got, want := d.objectKey(at), "2026-08-28/attendance-091500.jsonl"; got != want {
		t.Errorf("objectKey = %q, want %q", got, want)
	}
}
