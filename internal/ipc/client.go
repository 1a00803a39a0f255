package ipc

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"
)

// The client side of the control protocol. Each Send* opens one connection
// to the daemon, sends one directive, reads one reply, and returns. A daemon
// that cannot be reached surfaces as a connection error the CLI reports and
// exits non-zero on.

func newClient(addr string) *resty.Client {
	client := resty.New()
	client.SetBaseURL("http://" + addr)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "wallcycle")
	client.SetTimeout(10 * time.Second)
	return client
}

func send(addr, method, path string, body any) (*Response, error) {
	result := Response{}

	req := newClient(addr).R().SetResult(&result).SetError(&result)
	if body != nil {
		req.SetBody(body)
	}

	var res *resty.Response
	var err error
	switch method {
	case http.MethodGet:
		res, err = req.Get(path)
	default:
		res, err = req.Post(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot reach daemon at %s: %w", addr, err)
	}

	if res.StatusCode() != http.StatusOK {
		if result.Message != "" {
			return &result, errors.New(result.Message)
		}
		return &result, fmt.Errorf("daemon replied %s", res.Status())
	}

	return &result, nil
}

func SendPing(addr string) (*Response, error) {
	return send(addr, http.MethodGet, "/ping", nil)
}

func SendNext(addr string) (*Response, error) {
	return send(addr, http.MethodPost, "/next", nil)
}

func SendSetWallpaper(addr, path string) (*Response, error) {
	return send(addr, http.MethodPost, "/wallpaper", Request{Path: path})
}

func SendGetDir(addr string) (*Response, error) {
	return send(addr, http.MethodGet, "/directory", nil)
}

func SendSetDir(addr, path string) (*Response, error) {
	return send(addr, http.MethodPost, "/directory", Request{Path: path})
}

func SendKill(addr string) (*Response, error) {
	return send(addr, http.MethodPost, "/kill", nil)
}

func SendStatus(addr string) (*StatusResponse, error) {
	result := StatusResponse{}

	res, err := newClient(addr).R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, fmt.Errorf("cannot reach daemon at %s: %w", addr, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("daemon replied %s", res.Status())
	}

	return &result, nil
}
