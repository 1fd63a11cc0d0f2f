package control

import (
	"errors"
	"math"
	"testing"
)

func TestProportionalOnly(t *testing.T) {
	pid := NewPID(2.0, 0, 0)

	u, err := pid.Compute(10.0, 0.1)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	// derivative and integral terms vanish with ki=kd=0
	if math.Abs(u-20.0) > 1e-12 {
		t.Errorf("expected output 20, got %f", u)
	}
}

func TestIntegralAccumulates(t *testing.T) {
	pid := NewPID(0, 1.0, 0)

	u1, _ := pid.Compute(10.0, 0.1)
	u2, _ := pid.Compute(10.0, 0.1)

	if math.Abs(u1-1.0) > 1e-12 {
		t.Errorf("expected 1.0 after first step, got %f", u1)
	}
	if math.Abs(u2-2.0) > 1e-12 {
		t.Errorf("expected 2.0 after second step, got %f", u2)
	}
	if math.Abs(pid.Integral()-2.0) > 1e-12 {
		t.Errorf("expected integral 2.0, got %f", pid.Integral())
	}
}

func TestDerivative(t *testing.T) {
	pid := NewPID(0, 0, 1.0)

	pid.Compute(10.0, 0.1)
	u, _ := pid.Compute(12.0, 0.1)

	// (12-10)/0.1 = 20
	if math.Abs(u-20.0) > 1e-12 {
		t.Errorf("expected derivative output 20, got %f", u)
	}
}

func TestInvalidTimestep(t *testing.T) {
	pid := NewPID(1.0, 1.0, 1.0)
	pid.Compute(5.0, 0.1)

	before := pid.Integral()

	for _, dt := range []float64{0, -0.1} {
		_, err := pid.Compute(5.0, dt)
		if !errors.Is(err, ErrInvalidTimestep) {
			t.Errorf("dt=%f: expected ErrInvalidTimestep, got %v", dt, err)
		}
	}

	if pid.Integral() != before {
		t.Error("rejected timestep must not touch controller state")
	}
}

func TestReset(t *testing.T) {
	pid := NewPID(1.0, 1.0, 1.0)
	pid.Compute(5.0, 0.1)
	pid.Compute(5.0, 0.1)

	pid.Reset()

	if pid.Integral() != 0 {
		t.Errorf("expected zero integral after reset, got %f", pid.Integral())
	}

	p, i, d := pid.Terms()
	if p != 0 || i != 0 || d != 0 {
		t.Errorf("expected zero terms after reset, got %f %f %f", p, i, d)
	}

	// derivative must restart from prevErr=0
	u, _ := pid.Compute(1.0, 1.0)
	if math.Abs(u-(1.0+1.0+1.0)) > 1e-12 {
		t.Errorf("expected fresh-run output 3, got %f", u)
	}
}

func TestSetGainsTakesEffectNextCompute(t *testing.T) {
	pid := NewPID(1.0, 0, 0)
	pid.Compute(10.0, 0.1)

	pid.SetGains(3.0, 0, 0)
	u, _ := pid.Compute(10.0, 0.1)

	if math.Abs(u-30.0) > 1e-12 {
		t.Errorf("expected output 30 after gain change, got %f", u)
	}
}

func TestTerms(t *testing.T) {
	pid := NewPID(2.0, 0.5, 0.1)
	pid.Compute(10.0, 0.1)

	p, i, d := pid.Terms()
	if math.Abs(p-20.0) > 1e-12 {
		t.Errorf("P term: expected 20, got %f", p)
	}
	if math.Abs(i-0.5) > 1e-12 {
		t.Errorf("I term: expected 0.5, got %f", i)
	}
	if math.Abs(d-10.0) > 1e-12 {
		t.Errorf("D term: expected 10, got %f", d)
	}
}

func TestSetParam(t *testing.T) {
	pid := NewPID(1.0, 0.1, 0.01)

	pid.SetParam("Kp", 5.0)
	pid.SetParam("Ki", 0.5)
	pid.SetParam("Kd", 0.05)
	pid.SetParam("bogus", 99)

	params := pid.GetParams()
	if params["Kp"] != 5.0 || params["Ki"] != 0.5 || params["Kd"] != 0.05 {
		t.Errorf("unexpected params after SetParam: %v", params)
	}
}
