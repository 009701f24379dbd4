// Package shell turns declarative per-body layer tables into renderable
// point-cloud traces: planetary interiors, atmospheres, magnetospheres,
// ring systems, comet tails and belts. One generic builder realizes every
// layer kind; the per-body differences live in data, not code.
package shell

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/geom"
)

// BodyContext carries the scene-side inputs for building one body's
// shells: the catalog entry, where the body sits relative to the view
// center, and its heliocentric position for orienting tails and
// magnetosphere noses.
type BodyContext struct {
	Body catalog.Object

	// Center is the body's position relative to the view center, AU.
	// Every generated point is translated by it.
	Center astro.Vec3

	// Heliocentric is the body's position relative to the Sun, AU. It
	// orients comet tails (anti-solar) and magnetosphere noses
	// (sunward). Zero for the Sun itself.
	Heliocentric astro.Vec3

	// Seed feeds the jittered samplers; 0 uses the library default so
	// repeated builds are identical.
	Seed int64

	// MaxPoints caps the per-trace sample count; 0 means no cap.
	MaxPoints int
}

// Build realizes one shell layer as a validated trace. The cloud is
// generated in the body's local frame, tilted if the layer asks for it,
// oriented to the Sun for lobes, then translated to the body's scene
// position.
func Build(spec Spec, ctx BodyContext) (Trace, error) {
	if err := spec.validate(); err != nil {
		return Trace{}, err
	}
	body := ctx.Body

	count := spec.Count
	if count == 0 {
		count = defaultCount(spec.Kind)
	}

	var (
		cloud    geom.PointCloud
		colorPer []string
		err      error
	)
	switch spec.Kind {
	case KindSphereMesh:
		n := meshResolution(count, 1, ctx.MaxPoints)
		cloud, err = geom.Sphere(spec.sphereRadius(body), n)

	case KindSurface:
		cloud, err = geom.FibonacciSphere(spec.sphereRadius(body), clampCount(count, ctx.MaxPoints))

	case KindRing, KindBelt:
		inner, outer := spec.ringRadii(body)
		cloud, err = geom.Ring(geom.RingSpec{
			Inner:       inner,
			Outer:       outer,
			Count:       clampCount(count, ctx.MaxPoints),
			Thickness:   spec.thickness(body),
			StartAngle:  degToRad(spec.StartDeg),
			Span:        degToRad(spec.SpanDeg),
			RadialSteps: spec.RadialSteps,
			Seed:        ctx.Seed,
		})
		if err == nil && spec.Color2 != "" {
			colorPer = ringRamp(cloud, inner, outer, spec.Color, spec.Color2)
		}

	case KindLobe:
		r := body.RadiusAU()
		n := meshResolution(count, 2, ctx.MaxPoints)
		cloud, err = geom.MagnetosphereLobe(geom.LobeSpec{
			SunwardDistance:  spec.Lobe.StandoffFrac * r,
			EquatorialRadius: spec.Lobe.EquatorFrac * r,
			PolarRadius:      spec.Lobe.PolarFrac * r,
			TailLength:       spec.Lobe.TailLenFrac * r,
			TailBaseRadius:   spec.Lobe.TailBaseFrac * r,
			TailEndRadius:    spec.Lobe.TailEndFrac * r,
			Resolution:       n,
		})

	case KindTail:
		var curve astro.Vec3
		factor := 0.0
		if spec.Tail.Curved {
			// Dust tails lag the orbital motion: bend against the
			// prograde direction, perpendicular to the sunline.
			curve = astro.Vec3{Z: 1}.Cross(ctx.Heliocentric.Normalized()).Scale(-1)
			factor = spec.Tail.CurveFactor
		}
		cloud, err = geom.TailCone(geom.TailSpec{
			BodyPos:     ctx.Heliocentric,
			Length:      spec.Tail.LengthAU,
			HalfAngle:   degToRad(spec.Tail.HalfAngleDeg),
			Count:       clampCount(count, ctx.MaxPoints),
			Bias:        spec.Tail.Bias,
			Curve:       curve,
			CurveFactor: factor,
			Seed:        ctx.Seed,
		})
		if err == nil && spec.Color2 != "" {
			dir := astro.AntiSolar(ctx.Heliocentric)
			colorPer = tailRamp(cloud, dir, spec.Tail.LengthAU, spec.Color, spec.Color2)
		}

	default:
		return Trace{}, fmt.Errorf("shell: unrecognized shell kind %d", spec.Kind)
	}
	if err != nil {
		return Trace{}, fmt.Errorf("shell: %s %s: %w", body.Name, spec.Layer, err)
	}

	if spec.Tilted {
		if body.AxialTiltDeg != 0 {
			if err := cloud.Rotate(degToRad(body.AxialTiltDeg), astro.AxisX); err != nil {
				return Trace{}, err
			}
		}
		if body.NodeDeg != 0 {
			if err := cloud.Rotate(degToRad(body.NodeDeg), astro.AxisZ); err != nil {
				return Trace{}, err
			}
		}
	}
	if spec.Kind == KindLobe && (ctx.Heliocentric.X != 0 || ctx.Heliocentric.Y != 0) {
		// Swing the compressed nose around to face the Sun. The lobe is
		// generated with its nose on -X, so rotating by the body's
		// ecliptic longitude points the nose down the sunline.
		ang := math.Atan2(ctx.Heliocentric.Y, ctx.Heliocentric.X)
		if err := cloud.Rotate(ang, astro.AxisZ); err != nil {
			return Trace{}, err
		}
	}

	cloud.Translate(ctx.Center)

	hover := spec.Hover
	if hover == "" {
		hover = body.Blurb
	}
	glyph := spec.Glyph
	if glyph == 0 {
		glyph = '·'
	}

	t := Trace{
		Name:       spec.Layer,
		Color:      spec.Color,
		Opacity:    spec.Opacity,
		Glyph:      glyph,
		Cloud:      cloud,
		Hover:      hover,
		ColorPer:   colorPer,
		ShowLegend: spec.Legend,
	}
	if err := t.Validate(); err != nil {
		return Trace{}, err
	}
	return t, nil
}

// BuildAll realizes every layer in a body's shell table.
func BuildAll(code string, ctx BodyContext) ([]Trace, error) {
	specs := Shells(code)
	if specs == nil {
		return nil, fmt.Errorf("shell: no shell table for %q", code)
	}
	traces := make([]Trace, 0, len(specs))
	for _, s := range specs {
		t, err := Build(s, ctx)
		if err != nil {
			return nil, err
		}
		traces = append(traces, t)
	}
	return traces, nil
}

func defaultCount(k Kind) int {
	switch k {
	case KindSphereMesh:
		return 12
	case KindSurface:
		return 300
	case KindRing:
		return 900
	case KindLobe:
		return 16
	case KindTail:
		return 600
	case KindBelt:
		return 1500
	default:
		return 100
	}
}

// meshResolution clamps a per-axis resolution so the total point count
// (regions × res²) stays within budget.
func meshResolution(res, regions, budget int) int {
	if res < 2 {
		res = 2
	}
	if budget <= 0 {
		return res
	}
	for res > 2 && regions*res*res > budget {
		res--
	}
	return res
}

func clampCount(count, budget int) int {
	if budget > 0 && count > budget {
		return budget
	}
	return count
}

// tailRamp blends particle colors from head to tip along the tail axis.
func tailRamp(cloud geom.PointCloud, dir astro.Vec3, length float64, from, to string) []string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil || length <= 0 {
		return nil
	}
	out := make([]string, cloud.Len())
	for i := range out {
		d := cloud.X[i]*dir.X + cloud.Y[i]*dir.Y + cloud.Z[i]*dir.Z
		out[i] = a.BlendLab(b, clamp01(d/length)).Clamped().Hex()
	}
	return out
}

// ringRamp blends point colors from the inner to the outer edge.
func ringRamp(cloud geom.PointCloud, inner, outer float64, from, to string) []string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil || outer <= inner {
		return nil
	}
	out := make([]string, cloud.Len())
	for i := range out {
		r := math.Hypot(cloud.X[i], cloud.Y[i])
		out[i] = a.BlendLab(b, clamp01((r-inner)/(outer-inner))).Clamped().Hex()
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
