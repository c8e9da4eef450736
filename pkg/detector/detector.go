package detectorPkg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"TutelaGolang/internal/entity"

	"github.com/gorilla/websocket"
)

// IDetector is the client for the YOLO inference sidecar. The sidecar owns
// the model; this service only sends frames and receives raw detections.
type IDetector interface {
	Detect(frame []byte) (*entity.DetectorResult, error)
	ModelInfo() (*entity.ModelInfo, error)
	IsConnected() bool
	Reconnect() error
	CloseConnection()
}

type detectorClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewDetectorClient() IDetector {
	client := &detectorClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go client.connectInBackground()

	return client
}

func (c *detectorClient) connectInBackground() {
	if err := c.Reconnect(); err != nil {
		log.Printf("Initial connection to detector failed: %v. Will retry on demand.", err)
	} else {
		log.Printf("Successfully connected to detector service")
	}
}

func (c *detectorClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn != nil
}

func (c *detectorClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := getDetectorURL()
	log.Printf("Connecting to detector at %s", url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn

	go c.keepAlive()

	return nil
}

func (c *detectorClient) CloseConnection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *detectorClient) keepAlive() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn := c.conn

		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)

		if err != nil {
			log.Printf("Ping failed, marking detector connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *detectorClient) getConnection() (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("not connected to detector service")
	}

	return c.conn, nil
}

// Detect sends one encoded image to the sidecar and waits for the raw
// detections computed on it. One request is in flight per connection at a
// time; the mutex pairs each frame with its response.
func (c *detectorClient) Detect(frame []byte) (*entity.DetectorResult, error) {
	conn, err := c.getConnection()
	if err != nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("cannot connect to detector service: %w", err)
		}
		conn, err = c.getConnection()
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending frame: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading detection response: %w", err)
	}

	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})

	c.mu.Unlock()

	var result entity.DetectorResult
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling detection response: %w", err)
	}

	return &result, nil
}

// ModelInfo asks the sidecar for its model metadata via the text-mode
// control channel.
func (c *detectorClient) ModelInfo() (*entity.ModelInfo, error) {
	conn, err := c.getConnection()
	if err != nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("cannot connect to detector service: %w", err)
		}
		conn, err = c.getConnection()
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"op":"model_info"}`)); err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error requesting model info: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading model info: %w", err)
	}

	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})

	c.mu.Unlock()

	var info entity.ModelInfo
	if err := json.Unmarshal(message, &info); err != nil {
		return nil, fmt.Errorf("error unmarshaling model info: %w", err)
	}

	return &info, nil
}

func getDetectorURL() string {
	url := os.Getenv("DETECTOR_WS_URL")
	if url == "" {
		url = "ws://localhost:8000/ws/detect"
	}
	return url
}
