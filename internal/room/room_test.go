package room

import (
	"testing"

	"wizard-duel/internal/player"
	"wizard-duel/pkg/proto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupyFillsSeatsInOrder(t *testing.T) {
	r := NewRoom("arena")
	p1 := player.NewPlayer("h1", nil)
	p2 := player.NewPlayer("h2", nil)
	p3 := player.NewPlayer("h3", nil)

	seat, ok := r.Occupy(p1)
	require.True(t, ok)
	assert.Equal(t, SeatA, seat)
	assert.False(t, r.Full())

	seat, ok = r.Occupy(p2)
	require.True(t, ok)
	assert.Equal(t, SeatB, seat)
	assert.True(t, r.Full())

	seat, ok = r.Occupy(p3)
	assert.False(t, ok)
	assert.Equal(t, NotSeated, seat)

	// The failed occupy must not have displaced anyone.
	assert.Equal(t, SeatA, r.ResolveSeat("h1"))
	assert.Equal(t, SeatB, r.ResolveSeat("h2"))
	assert.Equal(t, NotSeated, r.ResolveSeat("h3"))
}

func TestResolveSeat(t *testing.T) {
	r := NewRoom("arena")
	r.Occupy(player.NewPlayer("h1", nil))

	tests := []struct {
		name   string
		handle string
		want   Seat
	}{
		{"seat A occupant", "h1", SeatA},
		{"unknown handle", "h9", NotSeated},
		{"empty handle", "", NotSeated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveSeat(tt.handle))
		})
	}
}

func TestTakeRoundRequiresBothSeats(t *testing.T) {
	r := NewRoom("arena")

	r.BufferMove(SeatA, proto.MovePayload(`{"move":"fireball"}`))
	_, _, ok := r.TakeRound()
	assert.False(t, ok)
	assert.Equal(t, 1, r.PendingCount())

	r.BufferMove(SeatB, proto.MovePayload(`{"move":"shield"}`))
	moveA, moveB, ok := r.TakeRound()
	require.True(t, ok)
	assert.JSONEq(t, `{"move":"fireball"}`, string(moveA))
	assert.JSONEq(t, `{"move":"shield"}`, string(moveB))

	// The buffer is drained in the same step that observed completion.
	assert.Equal(t, 0, r.PendingCount())
	_, _, ok = r.TakeRound()
	assert.False(t, ok)
}

func TestBufferMoveLastWriteWins(t *testing.T) {
	r := NewRoom("arena")

	r.BufferMove(SeatA, proto.MovePayload(`{"move":"load"}`))
	r.BufferMove(SeatA, proto.MovePayload(`{"move":"beam"}`))
	assert.Equal(t, 1, r.PendingCount())

	r.BufferMove(SeatB, proto.MovePayload(`{"move":"shield"}`))
	moveA, _, ok := r.TakeRound()
	require.True(t, ok)
	assert.JSONEq(t, `{"move":"beam"}`, string(moveA))
}

func TestRoomReusableAcrossRounds(t *testing.T) {
	r := NewRoom("arena")
	r.Occupy(player.NewPlayer("h1", nil))
	r.Occupy(player.NewPlayer("h2", nil))

	for i := 0; i < 3; i++ {
		r.BufferMove(SeatA, proto.MovePayload(`{"move":"load"}`))
		r.BufferMove(SeatB, proto.MovePayload(`{"move":"load"}`))
		_, _, ok := r.TakeRound()
		require.True(t, ok)
		require.Equal(t, 0, r.PendingCount())
	}
}
