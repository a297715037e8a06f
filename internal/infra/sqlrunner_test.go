package infra

import (
	"context"
	"errors"
	"testing"
)

func TestExtractMarker(t *testing.T) {
	marker, body, err := ExtractMarker("\n--sql 7574b59a-9103-4e83-9365-1532d57b5501\nselect 1;\n")
	if err != nil {
		t.Fatalf("ExtractMarker returned error: %v", err)
	}
	if marker != "7574b59a-9103-4e83-9365-1532d57b5501" {
		t.Fatalf("marker = %q", marker)
	}
	if body != "select 1;" {
		t.Fatalf("body = %q", body)
	}
}

func TestExtractMarkerRejects(t *testing.T) {
	cases := []string{
		"select 1;",
		"--sql not-a-uuid\nselect 1;",
		"--sql 7574B59A-9103-4E83-9365-1532D57B5501\nselect 1;",
		"-- 7574b59a-9103-4e83-9365-1532d57b5501\nselect 1;",
	}
	for _, q := range cases {
		if _, _, err := ExtractMarker(q); !errors.Is(err, ErrMissingMarker) {
			t.Fatalf("ExtractMarker(%q) error = %v, want ErrMissingMarker", q, err)
		}
	}
	if _, _, err := ExtractMarker("   "); err == nil {
		t.Fatalf("expected error for empty query")
	}
}

func TestSQLRunnerRejectsUnmarkedQueriesBeforeTouchingPool(t *testing.T) {
	r := &SQLRunner{}
	if _, err := r.Exec(context.Background(), "delete from textures"); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("Exec error = %v", err)
	}
	if _, err := r.Query(context.Background(), "select * from textures"); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("Query error = %v", err)
	}
	var id string
	if err := r.QueryRow(context.Background(), "select 1").Scan(&id); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("QueryRow error = %v", err)
	}
}
