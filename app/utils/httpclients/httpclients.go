package httpclients

import (
	"github.com/sirupsen/logrus"
	"resty.dev/v3"

	"flowrelay.ai/flow-api-gateway/app/utils/logger"
)

// NewClient creates a named resty client sharing the gateway's log output.
func NewClient(name string) *resty.Client {
	client := resty.New()
	client.SetHeader("User-Agent", "flow-api-gateway")
	client.OnError(func(req *resty.Request, err error) {
		logger.GetLogger().WithFields(logrus.Fields{
			"client": name,
			"url":    req.URL,
		}).Warnf("request failed: %v", err)
	})
	return client
}

func Init() {
	// Per-upstream clients are initialized by their own packages; this hook
	// exists so cmd/server can keep a single init call site.
}
