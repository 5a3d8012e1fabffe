package service

import (
	"context"
	"encoding/json"
	"job_portal_backend/pkg/logger"
	"job_portal_backend/pkg/monitoring"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64

	NotificationChannel = "notification_channel"
	MessageNotification = "NOTIFICATION"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Client struct {
	Hub     *NotificationHub
	Conn    *websocket.Conn
	Send    chan []byte
	UserID  uint
	Limiter *rate.Limiter
}

// readPump 只处理心跳与关闭；上行消息被丢弃，超过频率限制则断开
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warn("WebSocket unexpected close", zap.Error(err), zap.Uint("userId", c.UserID))
			}
			return
		}
		if !c.Limiter.Allow() {
			logger.Log.Warn("websocket client over rate limit, closing", zap.Uint("userId", c.UserID))
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

type pubSubMessage struct {
	TargetUser uint            `json:"targetUser"`
	Payload    json.RawMessage `json:"payload"`
}

// NotificationHub 维护本实例的 websocket 连接。
// 推送经 Redis 频道广播，每个实例只投递给本地连接的用户。
type NotificationHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
	Redis   *redis.Client
	pubsub  *redis.PubSub
}

func NewNotificationHub(rdb *redis.Client) *NotificationHub {
	return &NotificationHub{
		clients: make(map[uint]map[*Client]struct{}),
		Redis:   rdb,
	}
}

// Start 同步完成频道订阅后在后台消费，ctx 取消时退出
func (h *NotificationHub) Start(ctx context.Context) error {
	if h.Redis == nil {
		return nil
	}

	pubsub := h.Redis.Subscribe(ctx, NotificationChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return err
	}
	h.pubsub = pubsub

	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var psMsg pubSubMessage
				if err := json.Unmarshal([]byte(msg.Payload), &psMsg); err != nil {
					logger.Log.Error("PubSub unmarshal error", zap.Error(err))
					continue
				}
				h.deliverLocal(psMsg.TargetUser, psMsg.Payload)
			}
		}
	}()
	return nil
}

func (h *NotificationHub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
	monitoring.WebsocketConnections.Inc()
}

func (h *NotificationHub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.Send)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
	monitoring.WebsocketConnections.Dec()
}

// PushToUser 发布到 Redis；未配置 Redis 时直接投递本地连接
func (h *NotificationHub) PushToUser(ctx context.Context, userID uint, msg WSMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if h.Redis == nil {
		h.deliverLocal(userID, payload)
		return nil
	}

	data, err := json.Marshal(pubSubMessage{TargetUser: userID, Payload: payload})
	if err != nil {
		return err
	}
	return h.Redis.Publish(ctx, NotificationChannel, data).Err()
}

func (h *NotificationHub) deliverLocal(userID uint, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[userID] {
		select {
		case client.Send <- payload:
		default:
			logger.Log.Warn("notification dropped, client send buffer full", zap.Uint("userId", userID))
		}
	}
}

func (h *NotificationHub) OnlineCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Stop 关闭所有连接与订阅
func (h *NotificationHub) Stop() {
	h.mu.Lock()
	closed := 0
	for userID, set := range h.clients {
		for client := range set {
			close(client.Send)
			closed++
		}
		delete(h.clients, userID)
	}
	h.mu.Unlock()

	if h.pubsub != nil {
		h.pubsub.Close()
	}
	monitoring.WebsocketConnections.Set(0)
	logger.Log.Info("NotificationHub stopped", zap.Int("closedConnections", closed))
}

func ServeWs(hub *NotificationHub, w http.ResponseWriter, r *http.Request, userID uint) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.Uint("userId", userID))
		return
	}
	client := &Client{
		Hub:     hub,
		Conn:    conn,
		Send:    make(chan []byte, sendBuffer),
		UserID:  userID,
		Limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
	hub.Register(client)

	go client.writePump()
	go client.readPump()
}
