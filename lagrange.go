package fiberoptics

// Nodes is a set of interpolation nodes: ordinates Y measured at distinct
// abscissas X. Distinctness is the caller's responsibility; two equal
// abscissas make a basis denominator zero.
type Nodes struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}

// Len returns the number of nodes.
func (n *Nodes) Len() int { return len(n.X) }

// LagrangeInterpolate evaluates the Lagrange polynomial through nodes at x.
//
// The polynomial passes exactly through every node. Outside the node range
// it is evaluated as is, with no clamping.
//
// A rejected input yields 0 and a *ValidationError matching one of
// ErrNilNodes, ErrMissingTable, ErrTooFewNodes, ErrLengthMismatch or
// ErrNotANumber. The failure is also reported to Logger().
func LagrangeInterpolate(x float64, nodes *Nodes) (float64, error) {
	if ve := checkLagrange(x, nodes); ve != nil {
		return 0, reject("LagrangeInterpolate", ve)
	}
	return lagrange(x, nodes.X, nodes.Y), nil
}

func checkLagrange(x float64, nodes *Nodes) *ValidationError {
	if ve := checkNodes(nodes); ve != nil {
		return ve
	}
	if ve := checkFinite("x", x); ve != nil {
		return ve
	}
	if ve := checkAllFinite("nodes.x", nodes.X); ve != nil {
		return ve
	}
	return checkAllFinite("nodes.y", nodes.Y)
}

// lagrange assumes validated input.
func lagrange(x float64, xs, ys []float64) float64 {
	result := 0.0
	for j := range xs {
		basis := 1.0
		for i := range xs {
			if i == j {
				continue
			}
			basis *= (x - xs[i]) / (xs[j] - xs[i])
		}
		result += ys[j] * basis
	}
	return result
}
