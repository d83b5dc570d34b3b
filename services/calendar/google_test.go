package calendarSvc

import (
	"errors"
	"testing"

	"fixify/scheduling"

	"google.golang.org/api/googleapi"
)

func TestMapGoogleError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized 401", &googleapi.Error{Code: 401}, scheduling.CodeUnauthorized},
		{"forbidden 403", &googleapi.Error{Code: 403}, scheduling.CodeUnauthorized},
		{"not found 404", &googleapi.Error{Code: 404}, scheduling.CodeNotFound},
		{"server error 500", &googleapi.Error{Code: 500}, scheduling.CodeRemoteUnavailable},
		{"rate limited 429", &googleapi.Error{Code: 429}, scheduling.CodeRemoteUnavailable},
		{"network error", errors.New("dial tcp: timeout"), scheduling.CodeRemoteUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapGoogleError("query failed", tc.err)
			if scheduling.ErrorCode(got) != tc.want {
				t.Errorf("mapGoogleError(%v) code = %s, want %s", tc.err, scheduling.ErrorCode(got), tc.want)
			}
		})
	}
}

func TestMapGoogleErrorKeepsCause(t *testing.T) {
	cause := &googleapi.Error{Code: 401, Message: "invalid credentials"}
	mapped := mapGoogleError("freebusy query failed", cause)

	var apiErr *googleapi.Error
	if !errors.As(mapped, &apiErr) {
		t.Fatal("mapped error lost its googleapi cause")
	}
	if apiErr.Code != 401 {
		t.Errorf("cause code = %d, want 401", apiErr.Code)
	}
}
