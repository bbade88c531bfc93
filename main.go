package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"bookgram/backend/api/route"
	"bookgram/backend/common"
	"bookgram/backend/model"

	"github.com/gin-gonic/gin"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	common.InitConf()
	common.SetupGinLog()
	common.SysLog("BookGram API " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := model.InitDB(); err != nil {
		common.FatalLog(err)
	}
	defer func() {
		if err := model.CloseDB(); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}
	}()

	server := gin.Default()
	route.SetRouter(server)
	server.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			common.RespErrorStr(c, http.StatusNotFound, "API route not found")
			return
		}
		c.Status(http.StatusNotFound)
	})

	port := strconv.Itoa(*common.Port)
	common.SysLog("server listening on port: " + port)

	setupGracefulShutdown()

	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}

// setupGracefulShutdown registers signal handlers to ensure clean shutdown.
func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("shutting down...")
		if err := model.CloseDB(); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}
		os.Exit(0)
	}()
}
