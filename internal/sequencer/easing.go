package sequencer

import "math"

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(float64) float64

var easings = map[string]EaseFunc{
	"linear":     func(p float64) float64 { return p },
	"easeInQuad": func(p float64) float64 { return p * p },
	"easeOutQuad": func(p float64) float64 {
		return 1 - (1-p)*(1-p)
	},
	"easeInOutQuad": func(p float64) float64 {
		if p < 0.5 {
			return 2 * p * p
		}
		return 1 - math.Pow(-2*p+2, 2)/2
	},
	"easeInOutSine": func(p float64) float64 {
		return -(math.Cos(math.Pi*p) - 1) / 2
	},
}

// Easing returns the named easing function. Unknown names fall back to
// the default easing.
func Easing(name string) EaseFunc {
	if f, ok := easings[name]; ok {
		return f
	}
	return easings[DefaultEasing]
}

// keyframe interpolates evenly spaced keyframe values at progress p,
// easing each segment independently.
func keyframe(values []float64, p float64, ease EaseFunc) float64 {
	if len(values) == 0 {
		return 0
	}
	if len(values) == 1 || p <= 0 {
		return values[0]
	}
	if p >= 1 {
		return values[len(values)-1]
	}
	segments := len(values) - 1
	pos := p * float64(segments)
	seg := int(pos)
	if seg >= segments {
		seg = segments - 1
	}
	local := pos - float64(seg)
	from, to := values[seg], values[seg+1]
	return from + (to-from)*ease(local)
}
