package provider

import (
	"context"
	"time"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// CallClass groups upstream calls by observed latency.
type CallClass string

const (
	ClassGeneration    CallClass = "generation"
	ClassVisionLight   CallClass = "vision_light"
	ClassVision        CallClass = "vision"
	ClassSpeech        CallClass = "speech"
	ClassSearch        CallClass = "search"
	ClassCodeExecution CallClass = "code_execution"
	ClassURLFetch      CallClass = "url_fetch"
	ClassFileUpload    CallClass = "file_upload"
	ClassTranscription CallClass = "transcription"
	ClassImage         CallClass = "image"
	ClassReasoning     CallClass = "reasoning"
)

// timeoutMultipliers scales the base timeout per call class.
var timeoutMultipliers = map[CallClass]int{
	ClassGeneration:    1,
	ClassVisionLight:   1,
	ClassVision:        2,
	ClassSpeech:        2,
	ClassSearch:        3,
	ClassCodeExecution: 3,
	ClassURLFetch:      3,
	ClassFileUpload:    3,
	ClassTranscription: 3,
	ClassImage:         3,
	ClassReasoning:     5,
}

// Multiplier returns the timeout multiplier for class.
// Unlisted classes get 1.
func Multiplier(class CallClass) int {
	if m, ok := timeoutMultipliers[class]; ok {
		return m
	}
	return 1
}

// Deadline returns base scaled by the multiplier for class.
func Deadline(base time.Duration, class CallClass) time.Duration {
	return base * time.Duration(Multiplier(class))
}

// RacePolicy controls what happens to a call that loses the deadline race.
type RacePolicy struct {
	// CancelAbandoned cancels the losing call's context.
	// When false the call keeps running detached from the caller.
	CancelAbandoned bool
}

// Race runs call against a timer of length d.
// If the timer fires first Race returns models.ErrTimeout without waiting for
// call; the result of the abandoned call is discarded. If ctx is done first
// Race returns ctx.Err().
func Race[T any](ctx context.Context, d time.Duration, policy RacePolicy, call func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	var callCtx context.Context
	cancel := context.CancelFunc(func() {})
	if policy.CancelAbandoned {
		callCtx, cancel = context.WithCancel(ctx)
	} else {
		callCtx = context.WithoutCancel(ctx)
	}

	// Buffered so an abandoned call can always deliver and exit.
	done := make(chan outcome, 1)
	go func() {
		v, err := call(callCtx)
		done <- outcome{value: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case o := <-done:
		cancel()
		return o.value, o.err
	case <-timer.C:
		cancel()
		return zero, models.ErrTimeout
	case <-ctx.Done():
		cancel()
		return zero, ctx.Err()
	}
}
