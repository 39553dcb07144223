package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/moodnote-ai/moodnote/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
