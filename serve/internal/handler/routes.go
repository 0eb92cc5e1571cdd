package handler

import (
	"net/http"

	"github.com/HuXin0817/pawns-and-walls/serve/internal/logic"
	"github.com/HuXin0817/pawns-and-walls/serve/internal/svc"
	"github.com/HuXin0817/pawns-and-walls/serve/types"
	"github.com/gin-gonic/gin"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.POST("/match/turn", postTurnHandler(svcCtx))
	router.POST("/decision", inquireDecisionHandler(svcCtx))
}

func postTurnHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TurnRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := logic.NewPostTurnLogic(c.Request.Context(), svcCtx).PostTurn(&req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func inquireDecisionHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.DecisionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := logic.NewInquireDecisionLogic(c.Request.Context(), svcCtx).InquireDecision(&req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
