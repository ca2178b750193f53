package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/projects", "/projects"},
		{"/projects/3f2b8a8e-1c1d-4a8e-9b7a-5d0c6e2f4a11", "/projects/{id}"},
		{"/projects/3f2b8a8e-1c1d-4a8e-9b7a-5d0c6e2f4a11/image", "/projects/{id}/image"},
		{"/v1/items/42", "/v1/items/{id}"},
	}
	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues("success"))
	IncLoginAttempts("success")
	if got := testutil.ToFloat64(LoginAttempts.WithLabelValues("success")); got != before+1 {
		t.Errorf("login_attempts_total{success}: got %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(ImageUploads.WithLabelValues("error"))
	IncImageUploads("error")
	if got := testutil.ToFloat64(ImageUploads.WithLabelValues("error")); got != before+1 {
		t.Errorf("image_uploads_total{error}: got %v, want %v", got, before+1)
	}
}
