package worker

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestReorder(t *testing.T) {
	tests := []struct {
		name    string
		arrival []int
		want    []int
	}{
		{"in order", []int{0, 1, 2, 3}, []int{0, 1, 2, 3}},
		{"reversed", []int{3, 2, 1, 0}, []int{0, 1, 2, 3}},
		{"shuffled", []int{2, 0, 3, 1, 4}, []int{0, 1, 2, 3, 4}},
		{"gap left by stop", []int{0, 3, 1}, []int{0, 1, 3}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make(chan ProcessResult, len(tt.arrival))
			for _, index := range tt.arrival {
				results <- ProcessResult{Index: index}
			}
			close(results)

			var got []int
			n := Reorder(results, func(r ProcessResult) {
				got = append(got, r.Index)
			})
			if n != len(tt.want) {
				t.Errorf("Reorder() = %d; want %d", n, len(tt.want))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("emit order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReorder_WithPool(t *testing.T) {
	delayed := func(item WorkItem) ProcessResult {
		// Earlier items finish last.
		time.Sleep(time.Duration(20-item.Index) * time.Millisecond)
		return ProcessResult{Index: item.Index, Input: item.Line}
	}

	pool := NewPool(delayed, WithWorkers(4), WithBufferSize(20))
	pool.Start()
	go func() {
		submitLines(pool, 20)
		pool.Close()
	}()

	next := 0
	Reorder(pool.Results(), func(r ProcessResult) {
		if r.Index != next {
			t.Errorf("emitted index %d; want %d", r.Index, next)
		}
		next++
	})
	if next != 20 {
		t.Errorf("emitted %d results; want 20", next)
	}
}
