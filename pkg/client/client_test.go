package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"

	"github.com/deviantintegral/flameconnect/pkg/auth"
	"github.com/deviantintegral/flameconnect/pkg/codec"
	"github.com/deviantintegral/flameconnect/pkg/models"
)

func newTestClient(is *is.I, handler http.HandlerFunc) (*Client, func()) {
	server := httptest.NewServer(handler)
	c := New(context.Background(), auth.NewStaticToken("test-token"), WithBaseURL(server.URL), WithHTTPPool(server.Client()))
	return c, server.Close
}

func encodeParamForTest(p models.Parameter) (string, error) {
	return codec.EncodeParameter(p)
}

func TestListFiresMapsPascalCaseJSONAndOptionalFeatures(t *testing.T) {
	is := is.New(t)

	client, closeServer := newTestClient(is, func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/Fires/GetFires")
		is.Equal(r.Header.Get("Authorization"), "Bearer test-token")
		is.True(r.Header.Get("X-Request-Id") != "")

		io.WriteString(w, `[
			{"FireId":"fire-1","FriendlyName":"Living Room","Brand":"Acme","ProductType":"Insert",
			 "ProductModel":"X1","ItemCode":"IC-1","ConnectionState":1,"WithHeat":true,"IsIotFire":true,
			 "FireFeature":{"Sound":true,"SimpleHeat":true}},
			{"FireId":"fire-2","FriendlyName":"Bedroom","ConnectionState":0,"IsIotFire":true}
		]`)
	})
	defer closeServer()

	fires, err := client.ListFires(context.Background())
	is.NoErr(err)
	is.Equal(len(fires), 2)

	is.Equal(fires[0].FireID, "fire-1")
	is.Equal(fires[0].ConnectionState, models.ConnectionState(1))
	is.True(fires[0].Features != nil)
	is.True(fires[0].Features.Sound)
	is.True(fires[0].Features.SimpleHeat)
	is.Equal(fires[0].Features.AdvancedHeat, false)

	is.Equal(fires[1].FireID, "fire-2")
	is.True(fires[1].Features == nil)
}

func TestGetFireOverviewSkipsUnknownParameterIDs(t *testing.T) {
	is := is.New(t)

	mode := models.ModeParam{Mode: models.FireModeManual, TargetTemp: 22.5}
	encodedMode, err := encodeParamForTest(mode)
	is.NoErr(err)

	client, closeServer := newTestClient(is, func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/Fires/GetFireOverview")
		is.Equal(r.URL.Query().Get("FireId"), "fire-1")

		json.NewEncoder(w).Encode(map[string]any{
			"ResultCode": 0,
			"FireDetails": map[string]any{
				"FireId":       "fire-1",
				"FriendlyName": "Living Room",
			},
			"WifiFireOverview": map[string]any{
				"FireId": "fire-1",
				"Parameters": []map[string]any{
					{"ParameterId": int(models.ParamIDMode), "Value": encodedMode},
					{"ParameterId": 9999, "Value": "AAAAAA=="},
				},
			},
		})
	})
	defer closeServer()

	overview, err := client.GetFireOverview(context.Background(), "fire-1")
	is.NoErr(err)
	is.Equal(overview.Fire.FireID, "fire-1")
	is.Equal(len(overview.Parameters), 1)

	decodedMode, ok := overview.Mode()
	is.True(ok)
	is.Equal(decodedMode, mode)
}

func TestWriteParametersSendsAtomicBatch(t *testing.T) {
	is := is.New(t)

	var receivedBody writeParametersRequest
	client, closeServer := newTestClient(is, func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/Fires/WriteWifiParameters")
		is.Equal(r.Method, http.MethodPost)
		json.NewDecoder(r.Body).Decode(&receivedBody)
		w.WriteHeader(http.StatusOK)
	})
	defer closeServer()

	params := []models.Parameter{
		models.ModeParam{Mode: models.FireModeStandby, TargetTemp: 23.4},
	}

	err := client.WriteParameters(context.Background(), "fire-1", params)
	is.NoErr(err)
	is.Equal(receivedBody.FireID, "fire-1")
	is.Equal(len(receivedBody.Parameters), 1)
	is.Equal(receivedBody.Parameters[0].Value, "QQEDABcE")
}

func TestWriteParametersPropagatesApiErrorOnNon2xx(t *testing.T) {
	is := is.New(t)

	client, closeServer := newTestClient(is, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "gateway unavailable")
	})
	defer closeServer()

	err := client.WriteParameters(context.Background(), "fire-1", []models.Parameter{
		models.ModeParam{Mode: models.FireModeStandby, TargetTemp: 23.4},
	})
	is.True(err != nil)

	var apiErr *models.ApiError
	is.True(asAPIError(err, &apiErr))
	is.Equal(apiErr.Status, http.StatusInternalServerError)
}

func TestWriteParametersRejectsReadOnlyVariant(t *testing.T) {
	is := is.New(t)

	client, closeServer := newTestClient(is, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not have been sent for a read-only parameter")
	})
	defer closeServer()

	err := client.WriteParameters(context.Background(), "fire-1", []models.Parameter{
		models.ErrorParam{Faults: 0},
	})
	is.True(err != nil)

	var encErr *models.EncodeError
	is.True(asEncErr(err, &encErr))
}

// TestScenarioETurnOffWritesStandbyAtCurrentTargetTemp matches spec.md
// §8's turn_off scenario: a 23.4° target temp carries through unchanged
// and the only parameter written is ModeParam{Standby, 23.4}.
func TestScenarioETurnOffWritesStandbyAtCurrentTargetTemp(t *testing.T) {
	is := is.New(t)

	var overviewCalls, writeCalls int
	var receivedBody writeParametersRequest

	client, closeServer := newTestClient(is, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/Fires/GetFireOverview":
			overviewCalls++
			encodedMode, _ := encodeParamForTest(models.ModeParam{Mode: models.FireModeManual, TargetTemp: 23.4})
			json.NewEncoder(w).Encode(map[string]any{
				"WifiFireOverview": map[string]any{
					"FireId": "fire-1",
					"Parameters": []map[string]any{
						{"ParameterId": int(models.ParamIDMode), "Value": encodedMode},
					},
				},
			})
		case "/api/Fires/WriteWifiParameters":
			writeCalls++
			json.NewDecoder(r.Body).Decode(&receivedBody)
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	})
	defer closeServer()

	err := client.TurnOff(context.Background(), "fire-1")
	is.NoErr(err)
	is.Equal(overviewCalls, 1)
	is.Equal(writeCalls, 1)
	is.Equal(len(receivedBody.Parameters), 1)
	is.Equal(receivedBody.Parameters[0].ParameterID, models.ParamIDMode)
	is.Equal(receivedBody.Parameters[0].Value, "QQEDABcE")
}

func TestTurnOnRewritesFlameEffectAndModeTogether(t *testing.T) {
	is := is.New(t)

	var receivedBody writeParametersRequest

	client, closeServer := newTestClient(is, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/Fires/GetFireOverview":
			encodedMode, _ := encodeParamForTest(models.ModeParam{Mode: models.FireModeStandby, TargetTemp: 21.0})
			encodedFlame, _ := encodeParamForTest(models.FlameEffectParam{
				FlameEffect: models.FlameEffectOff,
				FlameSpeed:  3,
				Brightness:  models.BrightnessHigh,
			})
			json.NewEncoder(w).Encode(map[string]any{
				"WifiFireOverview": map[string]any{
					"FireId": "fire-1",
					"Parameters": []map[string]any{
						{"ParameterId": int(models.ParamIDMode), "Value": encodedMode},
						{"ParameterId": int(models.ParamIDFlameEffect), "Value": encodedFlame},
					},
				},
			})
		case "/api/Fires/WriteWifiParameters":
			json.NewDecoder(r.Body).Decode(&receivedBody)
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	})
	defer closeServer()

	err := client.TurnOn(context.Background(), "fire-1")
	is.NoErr(err)
	is.Equal(len(receivedBody.Parameters), 2)
}

func asAPIError(err error, target **models.ApiError) bool {
	ae, ok := err.(*models.ApiError)
	if ok {
		*target = ae
	}
	return ok
}

func asEncErr(err error, target **models.EncodeError) bool {
	ee, ok := err.(*models.EncodeError)
	if ok {
		*target = ee
	}
	return ok
}
