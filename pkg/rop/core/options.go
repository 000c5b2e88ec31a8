package core

import "context"

type OptionKey string

const (
	BufferOptionKey OptionKey = "buffer_options"
)

type MaxLimitOption struct {
	Value int
}

type BufferOptions struct {
	Size MaxLimitOption
}

// WithBufferOptions sets the channel capacity sources allocate for flows
// started with ctx.
func WithBufferOptions(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, BufferOptionKey, BufferOptions{MaxLimitOption{Value: size}})
}

func GetBufferSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(BufferOptionKey).(BufferOptions)
	if ok && options.Size.Value >= 0 {
		return options.Size.Value
	}
	return defaultSize
}
