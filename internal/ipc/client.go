package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"river-stream/internal/layout"
)

// Client keeps one connection open for any number of requests.
type Client struct {
	conn    net.Conn
	encoder *json.Encoder
	decoder *json.Decoder
}

func Dial(path string) (*Client, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", path, err)
	}
	return &Client{
		conn:    conn,
		encoder: json.NewEncoder(conn),
		decoder: json.NewDecoder(bufio.NewReader(conn)),
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Do sends one request and waits for its response.
func (c *Client) Do(req Request) (Response, error) {
	if err := c.encoder.Encode(req); err != nil {
		return Response{}, fmt.Errorf("failed to encode request: %w", err)
	}
	var resp Response
	if err := c.decoder.Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, nil
}

// GenerateLayout asks the server for a layout.
func (c *Client) GenerateLayout(viewCount, usableWidth, usableHeight, tags uint32, output string) (layout.GeneratedLayout, error) {
	resp, err := c.Do(Request{
		Command:      CommandGenerateLayout,
		ViewCount:    viewCount,
		UsableWidth:  usableWidth,
		UsableHeight: usableHeight,
		Tags:         &tags,
		Output:       output,
	})
	if err != nil {
		return layout.GeneratedLayout{}, err
	}
	if err := resp.err(); err != nil {
		return layout.GeneratedLayout{}, err
	}
	if resp.Layout == nil {
		return layout.GeneratedLayout{}, errors.New("response carried no layout")
	}
	return *resp.Layout, nil
}

// UserCmd forwards a user command.
func (c *Client) UserCmd(cmd string, tags *uint32, output string) error {
	resp, err := c.Do(Request{
		Command:     CommandUserCmd,
		UserCommand: cmd,
		Tags:        tags,
		Output:      output,
	})
	if err != nil {
		return err
	}
	return resp.err()
}

// SendRequest dials, sends a single request and closes the connection.
func SendRequest(path string, req Request) (Response, error) {
	c, err := Dial(path)
	if err != nil {
		return Response{}, err
	}
	defer c.Close()
	return c.Do(req)
}

func (r Response) err() error {
	if r.Status == StatusSuccess {
		return nil
	}
	return fmt.Errorf("server error: %s", r.Message)
}
