package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	cases := []struct {
		prev    State
		pressed bool
		want    State
	}{
		{None, true, Pressed},
		{None, false, None},
		{Pressed, true, Held},
		{Pressed, false, Released},
		{Held, true, Held},
		{Held, false, Released},
		{Released, true, Pressed},
		{Released, false, None},
	}
	for _, c := range cases {
		name := c.prev.String() + "_up"
		if c.pressed {
			name = c.prev.String() + "_down"
		}
		t.Run(name, func(t *testing.T) {
			require.Equal(t, c.want, Next(c.prev, c.pressed))
		})
	}
}

func TestStateReset(t *testing.T) {
	require.Equal(t, Held, Pressed.Reset())
	require.Equal(t, Held, Held.Reset())
	require.Equal(t, None, Released.Reset())
	require.Equal(t, None, None.Reset())
}

func TestStatePredicates(t *testing.T) {
	require.True(t, Pressed.Down())
	require.True(t, Held.Down())
	require.False(t, Released.Down())
	require.False(t, None.Down())

	require.True(t, Pressed.JustPressed())
	require.False(t, Held.JustPressed())
	require.True(t, Released.JustReleased())
	require.False(t, None.JustReleased())

	require.Equal(t, "invalid", State(7).String())
}

func TestHoldSequence(t *testing.T) {
	// a button held for three polls and then let go
	s := None
	var got []State
	for _, down := range []bool{true, true, true, false, false} {
		s = Next(s, down)
		got = append(got, s)
	}
	require.Equal(t, []State{Pressed, Held, Held, Released, None}, got)
}
