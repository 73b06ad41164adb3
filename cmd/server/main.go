package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Niteshdeva/GeneTrust/internal/adapters/encoder"
	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
	"github.com/Niteshdeva/GeneTrust/pkg/predictor"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 4000
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB
	DefaultConcurrency    = 0               // 0 means use GOMAXPROCS
	DefaultEncoderURL     = "http://localhost:8000"
	predictTimeout        = 60 * time.Second
)

var (
	// Edit predictor, constructed once at startup; its reference profile is
	// immutable afterwards and shared by all requests.
	editPredictor *predictor.Predictor

	// Logger instance
	logger l.Logger
)

// Request represents an edit prediction request
type Request struct {
	Sequence string `json:"sequence"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	encoderURL := flag.String("encoder-url", DefaultEncoderURL, "Base URL of the sequence encoder service")
	encoderTimeout := flag.Duration("encoder-timeout", encoder.DefaultEncoderTimeout, "Timeout per encoder call")
	maxLength := flag.Int("max-length", encoder.DefaultMaxLength, "Maximum input length forwarded to the encoder")
	references := flag.String("references", strings.Join(predictor.DefaultReferenceSequences, ","), "Comma-separated reference sequences")
	flag.Parse()

	// Set up logger
	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting edit prediction HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
		"encoder_url", *encoderURL,
	)

	// Initialize the predictor
	initPredictor(*encoderURL, *encoderTimeout, *maxLength, strings.Split(*references, ","), *warmUp)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // we'll handle logging ourselves
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initPredictor wires the encoder and builds the reference profile. When the
// encoder service is unreachable the server falls back to the offline
// positional encoder rather than refusing to start.
func initPredictor(encoderURL string, encoderTimeout time.Duration, maxLength int, references []string, warmUp bool) {
	var seqEncoder ports.SequenceEncoder

	remote := encoder.NewHTTPEncoder(encoderURL,
		encoder.WithTimeout(encoderTimeout),
		encoder.WithMaxLength(maxLength),
	)

	healthCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := remote.Health(healthCtx); err != nil {
		logger.Warn("Encoder service unavailable, falling back to offline positional encoder",
			"encoder_url", encoderURL,
			"error", err,
		)
		seqEncoder = encoder.NewPositionalEncoder()
	} else {
		logger.Info("Encoder service healthy", "encoder_url", encoderURL)
		seqEncoder = remote
	}

	opts := []predictor.PredictorOption{
		predictor.WithLogger(logger),
		predictor.WithEncoder(seqEncoder),
		predictor.WithOptimizedNormalizer(),
		predictor.WithReferenceSequences(references...),
	}
	if warmUp {
		opts = append(opts, predictor.WithWarmUp(true))
	}

	var err error
	editPredictor, err = predictor.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize predictor", "error", err)
		os.Exit(1)
	}

	logger.Info("Predictor initialized successfully",
		"references", len(references),
		"warm_up", warmUp,
	)
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "GeneTrust")
	setCORSHeaders(ctx)

	if string(ctx.Method()) == fasthttp.MethodOptions {
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}

	// Route based on path
	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/predict":
		handlePredict(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	// Log request
	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// setCORSHeaders allows cross-origin requests from app clients.
func setCORSHeaders(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "*")
	ctx.Response.Header.Set("Access-Control-Expose-Headers", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Credentials", "true")
}

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handlePredict handles edit prediction requests
func handlePredict(ctx *fasthttp.RequestCtx) {
	// Only accept POST requests
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	// Parse request
	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	// Create context with timeout
	c, cancel := context.WithTimeout(context.Background(), predictTimeout)
	defer cancel()

	// Run the prediction; validation happens before any embedding work
	result, err := editPredictor.Predict(c, req.Sequence)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, validationErr.Message)
			return
		}
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, err.Error())
		return
	}

	// Write response
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, result)
}

// Helper functions

// writeJSONResponse writes a JSON response to the context
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	errResponse := ErrorResponse{
		Error: message,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	// Create a logger factory
	factory := l.NewStandardFactory()

	// Configure the logger
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	// Create the logger
	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
