package breakout

// Fixed-point scale factor: 1 cell = 1000 units. Integer positions keep
// replays deterministic across platforms.
const Scale = 1000

// Fixed represents a fixed-point value scaled by Scale.
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to a cell coordinate, rounding toward
// negative infinity so positions just above row 0 are row -1.
func (f Fixed) ToCell() int {
	if f < 0 {
		return (int(f) - Scale + 1) / Scale
	}
	return int(f) / Scale
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Scaled multiplies f by num/den.
func (f Fixed) Scaled(num, den int) Fixed {
	return Fixed(int(f) * num / den)
}

// Ball is the ball state in fixed-point field coordinates.
type Ball struct {
	X, Y   Fixed
	VX, VY Fixed
}

// Cell returns the field cell the ball is in.
func (b *Ball) Cell() (int, int) {
	return b.X.ToCell(), b.Y.ToCell()
}

// Move updates the ball position by its velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Paddle is the player's paddle on a fixed row.
type Paddle struct {
	X     int // left edge, in cells
	Y     int
	Width int
}

// Center returns the paddle's center in fixed-point.
func (p *Paddle) Center() Fixed {
	return ToFixed(p.X) + ToFixed(p.Width)/2
}

// Shift moves the paddle by dx cells, keeping it on the field.
func (p *Paddle) Shift(dx int) {
	p.X = min(max(p.X+dx, 0), FieldW-p.Width)
}

// CollisionSide indicates which wall was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionLeft
	CollisionRight
	CollisionBottom
)

// CheckWallCollision reflects the ball off the side and top walls and
// reports whether it fell past the bottom edge.
func CheckWallCollision(ball *Ball) (side CollisionSide, fellOff bool) {
	switch {
	case ball.X < 0:
		ball.X = -ball.X
		ball.VX = ball.VX.Abs()
		return CollisionLeft, false
	case ball.X > ToFixed(FieldW-1):
		ball.X = 2*ToFixed(FieldW-1) - ball.X
		ball.VX = -ball.VX.Abs()
		return CollisionRight, false
	case ball.Y < 0:
		ball.Y = -ball.Y
		ball.VY = ball.VY.Abs()
		return CollisionTop, false
	case ball.Y >= ToFixed(FieldH):
		return CollisionBottom, true
	}
	return CollisionNone, false
}

// CheckPaddleCollision bounces a descending ball off the paddle. The hit
// offset from the paddle center sets the horizontal speed: edge hits leave
// at up to maxVX, center hits go straight up.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, maxVX Fixed) bool {
	if ball.VY <= 0 {
		return false
	}
	_, cy := ball.Cell()
	if cy != paddle.Y && cy != paddle.Y-1 {
		return false
	}
	if ball.X < ToFixed(paddle.X) || ball.X > ToFixed(paddle.X+paddle.Width) {
		return false
	}

	half := ToFixed(paddle.Width) / 2
	offset := ball.X - paddle.Center() // -half .. +half
	ball.VX = Fixed(int(offset) * int(maxVX) / int(half))
	ball.VY = -ball.VY.Abs()
	ball.Y = ToFixed(paddle.Y - 1)
	return true
}
