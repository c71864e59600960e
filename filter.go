// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package smoothing reduces noisy 16-bit sensor readings to one value per
// batch.
//
// A Filter collects a short batch of in-range samples and computes the median,
// mean, trimmed mean, minimum or maximum of it. A series of those statistics
// is the smoothed measurement.
//
// The package never returns errors and never panics. Configuration values
// outside their limits are clamped, samples outside the acceptance range are
// dropped, and statistics of an empty batch are 0. Use Filter.Summary or
// Filter.Readings when 0 is a meaningful reading.
package smoothing

import (
	"time"

	"github.com/pion/logging"
)

// Option is a functional option for a Filter.
type Option func(*Filter)

// WithLoggerFactory configures a custom logger factory for a Filter.
func WithLoggerFactory(lf logging.LoggerFactory) Option {
	return func(f *Filter) {
		f.logFactory = lf
	}
}

// WithClock replaces the wall clock used for the settle delay.
func WithClock(c Clock) Option {
	return func(f *Filter) {
		f.clock = c
	}
}

// Filter is a fixed-capacity batch of sensor samples.
//
// Offer samples until it returns false, then read the statistics. The next
// accepted sample discards the batch and starts a new one. Median and
// TrimmedMean sort the batch in place.
//
// This type is not concurrency safe. Offer blocks the calling goroutine for
// the settle delay after every accepted sample and cannot be canceled.
type Filter struct {
	logFactory logging.LoggerFactory
	log        logging.LeveledLogger
	clock      Clock

	buf         [BatchLengthMax]uint16
	count       int
	batchLength int
	valueMin    uint16
	valueMax    uint16
	settleDelay time.Duration
}

// New creates a Filter accepting samples in [valueMin, valueMax] in batches
// of batchLength, pausing settleDelay after every accepted sample. All
// arguments are clamped as by the corresponding setters.
func New(valueMax, valueMin, batchLength int, settleDelay time.Duration, opts ...Option) *Filter {
	f := &Filter{
		logFactory: logging.NewDefaultLoggerFactory(),
		clock:      wallClock{},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.logFactory.NewLogger("smoothing_filter")
	f.Configure(valueMax, valueMin, batchLength, settleDelay)

	return f
}

// NewDefault creates a Filter accepting every 16-bit value with the default
// batch length and settle delay.
func NewDefault(opts ...Option) *Filter {
	return New(FilterMax, FilterMin, BatchLengthDefault, SettleDelayDefault, opts...)
}

// Configure sets all parameters at once and starts a new batch.
func (f *Filter) Configure(valueMax, valueMin, batchLength int, settleDelay time.Duration) {
	f.SetRange(valueMin, valueMax)
	f.SetBatchLength(batchLength)
	f.SetSettleDelay(settleDelay)
	f.Reset()
	f.log.Debugf(
		"configured valueMin=%v, valueMax=%v, batchLength=%v, settleDelay=%v",
		f.valueMin, f.valueMax, f.batchLength, f.settleDelay,
	)
}

// SetRange sets the inclusive acceptance range. Both bounds are clamped to
// [FilterMin, FilterMax] and swapped if valueMin ends up above valueMax.
func (f *Filter) SetRange(valueMin, valueMax int) {
	lo := uint16(clamp(valueMin, FilterMin, FilterMax))
	hi := uint16(clamp(valueMax, FilterMin, FilterMax))
	f.valueMin, f.valueMax = min(lo, hi), max(lo, hi)
	f.log.Debugf("range=[%v, %v]", f.valueMin, f.valueMax)
}

// SetMin sets the lower acceptance bound. If it ends up above the current
// upper bound, the two are swapped.
func (f *Filter) SetMin(valueMin int) {
	f.valueMin = uint16(clamp(valueMin, FilterMin, FilterMax))
	f.orderRange()
	f.log.Debugf("range=[%v, %v]", f.valueMin, f.valueMax)
}

// SetMax sets the upper acceptance bound. If it ends up below the current
// lower bound, the two are swapped.
func (f *Filter) SetMax(valueMax int) {
	f.valueMax = uint16(clamp(valueMax, FilterMin, FilterMax))
	f.orderRange()
	f.log.Debugf("range=[%v, %v]", f.valueMin, f.valueMax)
}

func (f *Filter) orderRange() {
	if f.valueMin > f.valueMax {
		f.valueMin, f.valueMax = f.valueMax, f.valueMin
	}
}

// SetBatchLength sets the number of samples per batch. n is made odd by
// setting its lowest bit and then clamped to [BatchLengthMin, BatchLengthMax].
// A batch in progress is discarded if the length changes.
func (f *Filter) SetBatchLength(n int) {
	n = clamp(n|1, BatchLengthMin, BatchLengthMax)
	if n == f.batchLength {
		return
	}
	f.batchLength = n
	f.Reset()
	f.log.Debugf("batchLength=%v", f.batchLength)
}

// SetSettleDelay sets the pause after every accepted sample, clamped to
// [SettleDelayMin, SettleDelayMax].
func (f *Filter) SetSettleDelay(d time.Duration) {
	f.settleDelay = clamp(d, SettleDelayMin, SettleDelayMax)
	f.log.Debugf("settleDelay=%v", f.settleDelay)
}

// Reset discards the current batch.
func (f *Filter) Reset() {
	f.count = 0
}

// Offer registers a sample. Samples outside [ValueMin, ValueMax] are dropped
// without any delay. An accepted sample arriving at a full batch starts a new
// batch. Offer returns false once the batch is full and true while it wants
// more samples, so it can drive a loop:
//
//	for f.Offer(read()) {
//	}
func (f *Filter) Offer(v uint16) bool {
	if v < f.valueMin || v > f.valueMax {
		f.log.Tracef("rejected value=%v, range=[%v, %v]", v, f.valueMin, f.valueMax)

		return true
	}
	if f.count >= f.batchLength {
		f.Reset()
	}
	f.buf[f.count] = v
	f.count++
	f.log.Tracef("accepted value=%v, readings=%v/%v", v, f.count, f.batchLength)
	settle(f.clock, f.settleDelay)

	if f.count < f.batchLength {
		return true
	}
	f.log.Debugf("batch full, readings=%v", f.count)

	return false
}

func (f *Filter) batch() []uint16 {
	return f.buf[:f.count]
}

// Median sorts the batch and returns its lower median, or 0 if it is empty.
func (f *Filter) Median() uint16 {
	return median(f.batch())
}

// Mean returns the arithmetic mean of the batch rounded half up, or 0 if it
// is empty.
func (f *Filter) Mean() uint16 {
	return mean(f.batch())
}

// TrimmedMean sorts the batch and returns the mean of all samples except the
// lowest and the highest, rounded half up. It returns 0 for fewer than three
// samples.
func (f *Filter) TrimmedMean() uint16 {
	return trimmedMean(f.batch())
}

// Minimum returns the lowest sample of the batch, or 0 if it is empty.
func (f *Filter) Minimum() uint16 {
	return minimum(f.batch())
}

// Maximum returns the highest sample of the batch, or 0 if it is empty.
func (f *Filter) Maximum() uint16 {
	return maximum(f.batch())
}

// Summary computes every statistic of the batch. ok is false if the batch is
// empty. Like Median, it sorts the batch.
func (f *Filter) Summary() (s Summary, ok bool) {
	if f.count == 0 {
		return Summary{}, false
	}

	return Summary{
		Readings:    f.count,
		Median:      f.Median(),
		Mean:        f.Mean(),
		TrimmedMean: f.TrimmedMean(),
		Minimum:     f.Minimum(),
		Maximum:     f.Maximum(),
	}, true
}

// Readings returns the number of samples in the current batch.
func (f *Filter) Readings() int {
	return f.count
}

// BatchLength returns the number of samples that make a full batch.
func (f *Filter) BatchLength() int {
	return f.batchLength
}

// ValueMin returns the lower acceptance bound.
func (f *Filter) ValueMin() uint16 {
	return f.valueMin
}

// ValueMax returns the upper acceptance bound.
func (f *Filter) ValueMax() uint16 {
	return f.valueMax
}

// SettleDelay returns the pause after every accepted sample.
func (f *Filter) SettleDelay() time.Duration {
	return f.settleDelay
}

// State returns where the filter is in its batch cycle.
func (f *Filter) State() State {
	return stateOf(f.count, f.batchLength)
}
