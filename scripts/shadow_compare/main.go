// Command shadow_compare checks passthrough parity between the admin
// gateway and the advising API it fronts. The gateway's read endpoints
// proxy upstream resources one-to-one, so for each target the tool
// requests both sides, unwraps the gateway's response envelope and
// compares the payloads. Intended for smoke-testing a deployment
// against the upstream it points at.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"
)

type target struct {
	// Path is relative to each base URL, e.g. "/students".
	Path string `json:"path"`
	// Critical targets fail the run on any mismatch.
	Critical bool `json:"critical"`
}

var defaultTargets = []target{
	{Path: "/students", Critical: true},
	{Path: "/coaches", Critical: true},
	{Path: "/curricula", Critical: true},
	{Path: "/courses", Critical: true},
	{Path: "/enrollments", Critical: true},
	{Path: "/remarks", Critical: false},
	{Path: "/assignments", Critical: false},
}

type result struct {
	Target          target
	GatewayStatus   int
	UpstreamStatus  int
	Match           bool
	Err             error
	GatewayLatency  time.Duration
	UpstreamLatency time.Duration
}

func main() {
	var (
		gatewayBase   string
		upstreamBase  string
		gatewayToken  string
		upstreamToken string
		targetsPath   string
		timeout       time.Duration
	)

	flag.StringVar(&gatewayBase, "gateway-base", "http://localhost:8080/api/v1", "gateway base URL")
	flag.StringVar(&upstreamBase, "upstream-base", "http://localhost:9000/api", "advising API base URL")
	flag.StringVar(&gatewayToken, "gateway-token", os.Getenv("GATEWAY_TOKEN"), "bearer token for the gateway")
	flag.StringVar(&upstreamToken, "upstream-token", os.Getenv("UPSTREAM_SERVICE_TOKEN"), "bearer token for the advising API")
	flag.StringVar(&targetsPath, "targets", "", "optional JSON file overriding the built-in targets")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	targets := defaultTargets
	if targetsPath != "" {
		loaded, err := loadTargets(targetsPath)
		if err != nil {
			log.Fatalf("failed to load targets: %v", err)
		}
		targets = loaded
	}

	client := &http.Client{Timeout: timeout}
	breaking := 0

	fmt.Println("Gateway Parity Report")
	fmt.Println("=====================")
	for _, tgt := range targets {
		res := compare(client, gatewayBase, upstreamBase, gatewayToken, upstreamToken, tgt)
		if (res.Err != nil || !res.Match) && tgt.Critical {
			breaking++
		}
		printResult(res)
	}

	if breaking > 0 {
		fmt.Printf("%d critical target(s) diverged\n", breaking)
		os.Exit(1)
	}
	fmt.Println("all critical targets match")
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var targets []target
	if err := json.Unmarshal(data, &targets); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return targets, nil
}

func compare(client *http.Client, gatewayBase, upstreamBase, gatewayToken, upstreamToken string, tgt target) result {
	res := result{Target: tgt}

	gwBody, gwStatus, gwDur, err := fetch(client, gatewayBase, tgt.Path, gatewayToken)
	res.GatewayLatency = gwDur
	if err != nil {
		res.Err = fmt.Errorf("gateway request failed: %w", err)
		return res
	}
	upBody, upStatus, upDur, err := fetch(client, upstreamBase, tgt.Path, upstreamToken)
	res.UpstreamLatency = upDur
	if err != nil {
		res.Err = fmt.Errorf("upstream request failed: %w", err)
		return res
	}

	res.GatewayStatus = gwStatus
	res.UpstreamStatus = upStatus
	res.Match = gwStatus == upStatus && payloadsEqual(gwBody, upBody)
	return res
}

func fetch(client *http.Client, base, path, token string) ([]byte, int, time.Duration, error) {
	url := strings.TrimRight(base, "/") + path
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, 0, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, 0, err
	}
	return body, resp.StatusCode, time.Since(start), nil
}

// payloadsEqual compares the two bodies after unwrapping any response
// envelope, so {"data":[...]} on either side compares against the bare
// list on the other.
func payloadsEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	aj = unwrap(aj)
	bj = unwrap(bj)
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

func unwrap(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		if data, ok := m["data"]; ok {
			return data
		}
	}
	return v
}

// normalize collapses whole-number floats so 1 and 1.0 compare equal.
func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

func printResult(res result) {
	status := "OK"
	if res.Err != nil {
		status = "ERROR"
	} else if !res.Match {
		status = "DIFF"
	}
	fmt.Printf("[%s] GET %s\n", status, res.Target.Path)
	if res.Err != nil {
		fmt.Printf("  error: %v\n", res.Err)
		return
	}
	fmt.Printf("  gateway: %d (%s) | upstream: %d (%s) | critical: %t\n",
		res.GatewayStatus, res.GatewayLatency, res.UpstreamStatus, res.UpstreamLatency, res.Target.Critical)
}
