package parallel

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"go.lepak.sg/multiset/counter"
)

func TestCount(t *testing.T) {
	type args struct {
		ctx      context.Context
		list     []string
		f        func(int, string) string
		inflight int
	}
	tests := []struct {
		name    string
		args    args
		want    counter.Counter[string, int]
		wantErr bool
	}{
		{
			name: "empty",
			args: args{
				ctx:      context.Background(),
				list:     nil,
				f:        func(_ int, v string) string { return v },
				inflight: 1,
			},
			want:    counter.Counter[string, int]{},
			wantErr: false,
		},
		{
			name: "identity",
			args: args{
				ctx:      context.Background(),
				list:     []string{"a", "b", "a", "c", "a", "b"},
				f:        func(_ int, v string) string { return v },
				inflight: 2,
			},
			want: counter.Counter[string, int]{
				"a": 3,
				"b": 2,
				"c": 1,
			},
			wantErr: false,
		},
		{
			name: "extracted",
			args: args{
				ctx:  context.Background(),
				list: []string{"Apple", "apricot", "Banana", "avocado"},
				f: func(_ int, v string) string {
					time.Sleep(time.Millisecond)
					return strings.ToLower(v[:1])
				},
				inflight: 4,
			},
			want: counter.Counter[string, int]{
				"a": 3,
				"b": 1,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(tt.args.ctx, tt.args.list, tt.args.f, tt.args.inflight)
			if (err != nil) != tt.wantErr {
				t.Errorf("Count() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Count() = %v, want %v", got, tt.want)
			}

			goleak.VerifyNone(t)
		})
	}
}

func TestCount_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Count(ctx, []string{"a", "b"}, func(_ int, v string) string {
		return v
	}, 1)

	if err != context.Canceled {
		t.Errorf("Count() error = %v, want %v", err, context.Canceled)
	}
	if got != nil {
		t.Errorf("Count() = %v, want nil", got)
	}

	goleak.VerifyNone(t)
}

func TestCountPool(t *testing.T) {
	type args struct {
		ctx     context.Context
		list    []int
		f       func(int, int) int
		workers int
	}
	tests := []struct {
		name    string
		args    args
		want    counter.Counter[int, int]
		wantErr bool
	}{
		{
			name: "one worker",
			args: args{
				ctx:     context.Background(),
				list:    []int{1, 2, 3, 4, 5, 6},
				f:       func(_, v int) int { return v % 2 },
				workers: 1,
			},
			want: counter.Counter[int, int]{
				0: 3,
				1: 3,
			},
			wantErr: false,
		},
		{
			name: "more workers than items",
			args: args{
				ctx:  context.Background(),
				list: []int{1, 2, 3},
				f: func(_, v int) int {
					time.Sleep(time.Millisecond)
					return v % 2
				},
				workers: 8,
			},
			want: counter.Counter[int, int]{
				0: 1,
				1: 2,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountPool(tt.args.ctx, tt.args.list, tt.args.f, tt.args.workers)
			if (err != nil) != tt.wantErr {
				t.Errorf("CountPool() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CountPool() = %v, want %v", got, tt.want)
			}

			goleak.VerifyNone(t)
		})
	}
}
