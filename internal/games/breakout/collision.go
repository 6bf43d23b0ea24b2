package breakout

// BrickHit identifies a brick destroyed during detection.
type BrickHit struct {
	Column, Row int
}

// HitReport is the outcome of one brick detection pass.
type HitReport struct {
	Hits    []BrickHit // In scan order
	Bounced bool       // Net vertical flip: true when len(Hits) is odd
}

// DetectBrickHits tests the ball center against every alive, placed brick in
// column-major order. Each containing brick is destroyed, scores one point and
// flips the ball's vertical velocity. The scan does not stop at the first hit,
// so overlapping bricks flip dy once each.
func DetectBrickHits(s *GameState) HitReport {
	var report HitReport
	center := s.Ball.Center()

	s.Bricks.Each(func(c, r int, b *Brick) {
		if !b.Alive || !b.Placed {
			return
		}
		if !b.Rect().ContainsStrict(center) {
			return
		}

		s.Ball.BounceY()
		b.Alive = false
		s.Score++
		report.Hits = append(report.Hits, BrickHit{Column: c, Row: r})
	})

	report.Bounced = len(report.Hits)%2 == 1
	return report
}
