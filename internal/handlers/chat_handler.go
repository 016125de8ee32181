package handlers

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/services"
	chatws "github.com/forestgump22/tutorgo-frontend/internal/websocket"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type chatApplicationService interface {
	Send(ctx context.Context, ownerKey, text string) (*services.ChatResult, error)
	History(ctx context.Context, ownerKey string) ([]models.ChatMessage, bool, error)
	Clear(ctx context.Context, ownerKey string) error
	SetOpen(ctx context.Context, ownerKey string, open bool) error
}

type ChatHandler struct {
	service chatApplicationService
	hub     *chatws.Hub
}

func NewChatHandler(service chatApplicationService, hub *chatws.Hub) *ChatHandler {
	return &ChatHandler{service: service, hub: hub}
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

// Send resolves one assistant exchange. The result either carries a model
// message or a navigation route, never both; other open tabs learn about
// it through the hub.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	result, err := h.service.Send(c.Context(), chatOwnerFrom(c), req.Text)
	if err != nil {
		return mapServiceError(c, err)
	}

	h.hub.Broadcast(chatOwnerFrom(c), chatws.Event{Type: "result", Result: result})
	return c.JSON(result)
}

func (h *ChatHandler) History(c *fiber.Ctx) error {
	messages, open, err := h.service.History(c.Context(), chatOwnerFrom(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"messages": messages,
		"isOpen":   open,
	})
}

func (h *ChatHandler) Clear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context(), chatOwnerFrom(c)); err != nil {
		return mapServiceError(c, err)
	}
	h.hub.Broadcast(chatOwnerFrom(c), chatws.Event{Type: "cleared"})
	return c.JSON(fiber.Map{"message": "Conversación reiniciada."})
}

type setOpenRequest struct {
	Open bool `json:"open"`
}

func (h *ChatHandler) SetOpen(c *fiber.Ctx) error {
	var req setOpenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	if err := h.service.SetOpen(c.Context(), chatOwnerFrom(c), req.Open); err != nil {
		return mapServiceError(c, err)
	}
	h.hub.Broadcast(chatOwnerFrom(c), chatws.Event{Type: "open", Open: &req.Open})
	return c.JSON(fiber.Map{"isOpen": req.Open})
}

// WebSocketAuth stashes the owner key before the upgrade; Locals set here
// are the only state HandleWebSocket can see.
func (h *ChatHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}
	c.Locals("ws_owner", chatOwnerFrom(c))
	return c.Next()
}

func (h *ChatHandler) HandleWebSocket(conn *websocket.Conn) {
	ownerKey, _ := conn.Locals("ws_owner").(string)
	client := chatws.NewClient(h.hub, conn, ownerKey)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(h.service)
}
