package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/service"
)

const (
	liveReadTimeout = 120 * time.Second
	liveCalcTimeout = 30 * time.Second
)

// Live message types
const (
	MsgCalculate = "calculate"
	MsgPing      = "ping"
	MsgResult    = "result"
	MsgError     = "error"
	MsgPong      = "pong"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is a client message on the live socket
type WSMessage struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSCalculatePayload asks for one tool run
type WSCalculatePayload struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// WSResponse is a server message on the live socket. ID echoes the
// client message id so answers to concurrent requests can be matched.
type WSResponse struct {
	Type    string      `json:"type"`
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// liveHandler runs calculations sent over a WebSocket
type liveHandler struct {
	service *service.Service
	logger  *mrwlog.Logger
}

func newLiveHandler(svc *service.Service, logger *mrwlog.Logger) *liveHandler {
	return &liveHandler{service: svc, logger: logger.WithName("live")}
}

func (h *liveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(conn, requestIDFrom(r.Context()))
}

// liveConn serialises writes; gorilla connections allow one writer
type liveConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *liveConn) send(resp WSResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(resp)
}

func (h *liveHandler) handleConnection(ws *websocket.Conn, requestID string) {
	defer ws.Close()

	logger := h.logger.WithRequestID(requestID)
	logger.Info("WebSocket connection established", mrwlog.Fields{"remote": ws.RemoteAddr().String()})

	conn := &liveConn{conn: ws}
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	ws.SetReadDeadline(time.Now().Add(liveReadTimeout))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(liveReadTimeout))
		return nil
	})

	for {
		var msg WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WarnWithErr("WebSocket read error", err)
			} else {
				logger.Info("WebSocket connection closed")
			}
			return
		}
		ws.SetReadDeadline(time.Now().Add(liveReadTimeout))

		switch msg.Type {
		case MsgPing:
			h.reply(conn, logger, WSResponse{Type: MsgPong, ID: msg.ID})

		case MsgCalculate:
			var payload WSCalculatePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.replyError(conn, logger, msg.ID, string(mrwerror.CodeParseError), "invalid calculate payload")
				continue
			}
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				h.calculate(ctx, conn, logger, id, payload)
			}(msg.ID)

		default:
			h.replyError(conn, logger, msg.ID, "UNKNOWN_TYPE", "unknown message type: "+msg.Type)
		}
	}
}

func (h *liveHandler) calculate(ctx context.Context, conn *liveConn, logger *mrwlog.Logger, id string, payload WSCalculatePayload) {
	params, err := paramsFromJSON(payload.Params)
	if err != nil {
		h.replyErr(conn, logger, id, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, liveCalcTimeout)
	defer cancel()

	res, err := h.service.Run(ctx, service.Request{Tool: payload.Tool, Params: params, RequestID: id})
	if err != nil {
		h.replyErr(conn, logger, id, err)
		return
	}
	h.reply(conn, logger, WSResponse{Type: MsgResult, ID: id, Payload: newResultResponse(res)})
}

func (h *liveHandler) reply(conn *liveConn, logger *mrwlog.Logger, resp WSResponse) {
	if err := conn.send(resp); err != nil {
		logger.WarnWithErr("WebSocket send error", err)
	}
}

func (h *liveHandler) replyError(conn *liveConn, logger *mrwlog.Logger, id, code, message string) {
	h.reply(conn, logger, WSResponse{Type: MsgError, ID: id, Payload: ErrorResponse{Code: code, Message: message}})
}

func (h *liveHandler) replyErr(conn *liveConn, logger *mrwlog.Logger, id string, err error) {
	resp := ErrorResponse{Code: string(mrwerror.CodeInternal), Message: err.Error()}
	if e, ok := mrwerror.As(err); ok {
		resp.Code = string(e.Code())
		resp.Details = e.Details()
	}
	h.reply(conn, logger, WSResponse{Type: MsgError, ID: id, Payload: resp})
}
