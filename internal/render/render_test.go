package render

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	events   []string
	payloads []any
	err      error
}

func (s *captureSender) Send(event string, payload any) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	s.payloads = append(s.payloads, payload)
	return nil
}

func TestBridgeRenderer_ForwardsPatches(t *testing.T) {
	sender := &captureSender{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewBridgeRenderer(sender, logger)

	p := Patch{Fragment: FragmentHealth, Op: OpSet, Data: 85}
	r.Apply(p)

	require.Len(t, sender.events, 1)
	assert.Equal(t, PatchEvent, sender.events[0])
	assert.Equal(t, p, sender.payloads[0])
}

func TestBridgeRenderer_SendFailureIsSwallowed(t *testing.T) {
	sender := &captureSender{err: errors.New("link down")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewBridgeRenderer(sender, logger)

	// Must not panic or propagate; the next patch repairs the fragment.
	r.Apply(Patch{Fragment: FragmentMoney, Op: OpSet, Data: "$100"})
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	rec.Apply(Patch{Fragment: FragmentHealth, Op: OpSet, Data: 85})
	rec.Apply(Patch{Fragment: FragmentHealth, Op: OpSet, Data: 40})
	rec.Apply(Patch{Fragment: FragmentScreen, Op: OpShow, Data: "hud"})

	assert.Equal(t, 2, rec.CountFor(FragmentHealth))
	assert.Equal(t, 1, rec.CountFor(FragmentScreen))
	assert.Equal(t, 0, rec.CountFor(FragmentMoney))
	assert.Len(t, rec.Patches(), 3)

	rec.Reset()
	assert.Empty(t, rec.Patches())
}
