package leash

import (
	"time"

	"github.com/fogleman/ease"
)

// Easing maps a linear progress fraction in [0, 1] to an eased fraction.
// The functions in github.com/fogleman/ease satisfy this signature.
type Easing func(t float64) float64

// scalePart is the fraction of the total duration given to the secondary
// (scale or fade) treatment of a bounds change; the visually dominant
// treatment spans the full duration.
const scalePart = 0.7

// BoundsChangeSpec animates a surface between two bounds rectangles with a
// composed scale, translate, clip and, for thumbnails, alpha treatment.
//
// The behavior differs depending on whether the bounds are growing or
// shrinking. If growing, it does a clip-reveal of the destination after a
// quicker fade-out and scale of the smaller old content. If shrinking, it
// shrinks the old content into place, followed by a quicker fade-out of the
// bigger old content while leaving the new content in place. Either way the
// more prominent transition gets the full duration and the secondary one is
// shortened.
//
// The thumbnail variant animates a detached preview layer instead of the
// live surface and uses the inverse scale treatment.
type BoundsChangeSpec struct {
	startBounds Rect
	endBounds   Rect
	duration    time.Duration
	thumbnail   bool
	easing      Easing

	segments []segment
}

// BoundsChangeOption configures a BoundsChangeSpec during creation.
type BoundsChangeOption func(*BoundsChangeSpec)

// Thumbnail marks the spec as animating a detached thumbnail layer rather
// than the live surface.
func Thumbnail() BoundsChangeOption {
	return func(s *BoundsChangeSpec) {
		s.thumbnail = true
	}
}

// WithEasing sets the easing applied within each animation segment.
// Defaults to [ease.InOutSine]. Easing never moves segment endpoints: the
// frame at a segment's start and end is the same for every easing.
func WithEasing(fn Easing) BoundsChangeOption {
	return func(s *BoundsChangeSpec) {
		if fn != nil {
			s.easing = fn
		}
	}
}

// NewBoundsChangeSpec creates a spec interpolating a surface from
// startBounds to endBounds over duration. Both rectangles must be
// non-empty.
func NewBoundsChangeSpec(startBounds, endBounds Rect, duration time.Duration, opts ...BoundsChangeOption) *BoundsChangeSpec {
	s := &BoundsChangeSpec{
		startBounds: startBounds,
		endBounds:   endBounds,
		duration:    duration,
		easing:      ease.InOutSine,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.buildSegments()
	return s
}

// Duration implements [AnimationSpec].
func (s *BoundsChangeSpec) Duration() time.Duration { return s.duration }

// Apply implements [AnimationSpec]. The clip rectangle is compensated by
// the inverse of the applied scale so that it crops after the scale instead
// of before; an uncompensated crop would clip the pre-scale content.
func (s *BoundsChangeSpec) Apply(t Transaction, leash Surface, playTime time.Duration) {
	fr := s.frameAt(playTime)
	if s.thumbnail {
		t.SetAlpha(leash, fr.alpha)
	}
	t.SetMatrix(leash, fr.matrix)
	crop := Rect{}
	if fr.hasClip {
		crop = compensateClip(fr.clip, fr.matrix)
	}
	t.SetCrop(leash, crop)
}

// buildSegments translates the bounds pair into animation segments.
func (s *BoundsChangeSpec) buildSegments() {
	start, end := s.startBounds, s.endBounds
	growing := end.Width()-start.Width()+end.Height()-start.Height() >= 0
	scalePeriod := time.Duration(float64(s.duration) * scalePart)
	startScaleX := scalePart*float64(start.Width())/float64(end.Width()) + (1 - scalePart)
	startScaleY := scalePart*float64(start.Height())/float64(end.Height()) + (1 - scalePart)
	shrinkScaleX := float64(end.Width()) / float64(start.Width())
	shrinkScaleY := float64(end.Height()) / float64(start.Height())

	startClip := start.OffsetTo(0, 0)
	endClip := end.OffsetTo(0, 0)

	if s.thumbnail {
		if growing {
			s.segments = append(s.segments,
				alphaSegment(0, scalePeriod, 1, 0),
				scaleSegment(0, s.duration,
					1/startScaleX, 1/startScaleX, 1/startScaleY, 1/startScaleY),
			)
		} else {
			s.segments = append(s.segments,
				alphaSegment(scalePeriod, s.duration-scalePeriod, 1, 0),
				scaleSegment(0, scalePeriod, 1, shrinkScaleX, 1, shrinkScaleY),
				translateSegment(0, scalePeriod, start, end),
				clipSegment(0, s.duration, startClip, endClip),
			)
		}
		return
	}

	if growing {
		s.segments = append(s.segments,
			scaleSegment(0, scalePeriod, startScaleX, 1, startScaleY, 1),
			translateSegment(0, s.duration, start, end),
			clipSegment(0, s.duration, startClip, endClip),
		)
	} else {
		// No visual effect, but keeps the runner busy for the full
		// duration; it would otherwise jump to the last frame.
		s.segments = append(s.segments, alphaSegment(0, s.duration, 1, 1))
	}
}

// frameAt composes all segments into the frame state for playTime.
func (s *BoundsChangeSpec) frameAt(playTime time.Duration) frameState {
	fr := frameState{matrix: Identity(), alpha: 1}
	for _, seg := range s.segments {
		seg.apply(s.segmentProgress(playTime, seg), &fr)
	}
	return fr
}

// segmentProgress returns the eased progress of seg at playTime, clamped to
// [0, 1]. Before the segment's offset the progress is 0; after its end it
// stays at 1.
func (s *BoundsChangeSpec) segmentProgress(playTime time.Duration, seg segment) float64 {
	if seg.duration <= 0 {
		return 1
	}
	p := float64(playTime-seg.offset) / float64(seg.duration)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return s.easing(p)
}

// frameState accumulates the composed transform of one frame.
type frameState struct {
	matrix  Matrix
	alpha   float32
	clip    Rect
	hasClip bool
}

// segment is one component animation within a spec: a value interpolation
// active over [offset, offset+duration] of the play time.
type segment struct {
	offset   time.Duration
	duration time.Duration
	apply    func(p float64, fr *frameState)
}

func alphaSegment(offset, duration time.Duration, from, to float32) segment {
	return segment{offset, duration, func(p float64, fr *frameState) {
		fr.alpha *= from + (to-from)*float32(p)
	}}
}

func scaleSegment(offset, duration time.Duration, fromX, toX, fromY, toY float64) segment {
	return segment{offset, duration, func(p float64, fr *frameState) {
		sx := fromX + (toX-fromX)*p
		sy := fromY + (toY-fromY)*p
		fr.matrix = Scale(sx, sy).Multiply(fr.matrix)
	}}
}

func translateSegment(offset, duration time.Duration, from, to Rect) segment {
	return segment{offset, duration, func(p float64, fr *frameState) {
		dx := float64(from.Left) + float64(to.Left-from.Left)*p
		dy := float64(from.Top) + float64(to.Top-from.Top)*p
		fr.matrix = Translate(dx, dy).Multiply(fr.matrix)
	}}
}

func clipSegment(offset, duration time.Duration, from, to Rect) segment {
	return segment{offset, duration, func(p float64, fr *frameState) {
		fr.clip = lerpRect(from, to, p)
		fr.hasClip = true
	}}
}

// lerpRect interpolates each edge of from towards to.
func lerpRect(from, to Rect, p float64) Rect {
	return Rect{
		Left:   from.Left + int(float64(to.Left-from.Left)*p),
		Top:    from.Top + int(float64(to.Top-from.Top)*p),
		Right:  from.Right + int(float64(to.Right-from.Right)*p),
		Bottom: from.Bottom + int(float64(to.Bottom-from.Bottom)*p),
	}
}

// compensateClip maps clip through the inverse of the scale components of
// m so that the crop applies in leash-local, post-scale space. Only the
// X/Y scale components are inverted; shear and rotation are ignored.
func compensateClip(clip Rect, m Matrix) Rect {
	vx := m.TransformVector(Pt(1, 0))
	vy := m.TransformVector(Pt(0, 1))
	invX := 1 / vx.X
	invY := 1 / vy.Y
	return Rect{
		Left:   int(float64(clip.Left)*invX + 0.5),
		Top:    int(float64(clip.Top)*invY + 0.5),
		Right:  int(float64(clip.Right)*invX + 0.5),
		Bottom: int(float64(clip.Bottom)*invY + 0.5),
	}
}
