package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLineClearPoints(t *testing.T) {
	tests := []struct {
		lines, level, want int
	}{
		{1, 1, 40},
		{2, 1, 100},
		{3, 1, 300},
		{4, 1, 1200},
		{1, 3, 120},
		{4, 5, 6000},
		{0, 1, 0},
		{5, 1, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, LineClearPoints(tc.lines, tc.level), "lines=%d level=%d", tc.lines, tc.level)
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, 1, Level(0))
	assert.Equal(t, 1, Level(9))
	assert.Equal(t, 2, Level(10))
	assert.Equal(t, 4, Level(39))
}

func TestGravityInterval(t *testing.T) {
	assert.Equal(t, time.Second, GravityInterval(1))
	assert.Equal(t, 500*time.Millisecond, GravityInterval(11))
	assert.Equal(t, TetrisTick, GravityInterval(20))
	assert.Equal(t, TetrisTick, GravityInterval(99))
	assert.Less(t, GravityInterval(5), GravityInterval(4))
}

func TestSnakeTickRate(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, SnakeTickRate(1))
	assert.Equal(t, 255*time.Millisecond, SnakeTickRate(4))
	assert.Equal(t, 80*time.Millisecond, SnakeTickRate(100))
}

func TestBrickPoints(t *testing.T) {
	assert.Equal(t, 60, BrickPoints(0, 6))
	assert.Equal(t, 10, BrickPoints(5, 6))
	assert.Equal(t, 300, BreakoutLevelBonus(3))
}
