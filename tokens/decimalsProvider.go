package tokens

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/annchain/gcache"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

var log = logger.GetOrCreate("tokens")

const (
	// NativeTokenIdentifier is the ticker used for the native coin
	NativeTokenIdentifier = "EGLD"

	tokenPath      = "/tokens/%s"
	collectionPath = "/collections/%s"
)

// ArgsDecimalsProvider holds the arguments needed to create a new decimals provider
type ArgsDecimalsProvider struct {
	ApiURL         string
	RequestTimeout time.Duration
	CacheSize      int
	TTL            time.Duration
	Marshaller     marshal.Marshalizer
}

type tokenResponse struct {
	Identifier string `json:"identifier"`
	Decimals   uint32 `json:"decimals"`
}

// decimalsProvider resolves the decimals of ESDT tokens through the MultiversX API, caching the answers
type decimalsProvider struct {
	apiURL     string
	httpClient *http.Client
	cache      gcache.Cache
	marshaller marshal.Marshalizer
}

// NewDecimalsProvider creates a new decimals provider
func NewDecimalsProvider(args ArgsDecimalsProvider) (*decimalsProvider, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &decimalsProvider{
		apiURL:     strings.TrimSuffix(args.ApiURL, "/"),
		httpClient: &http.Client{Timeout: args.RequestTimeout},
		cache:      gcache.New(args.CacheSize).LRU().Expiration(args.TTL).Build(),
		marshaller: args.Marshaller,
	}, nil
}

func checkArgs(args ArgsDecimalsProvider) error {
	if len(args.ApiURL) == 0 {
		return ErrEmptyApiURL
	}
	if args.RequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}
	if args.CacheSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, args.CacheSize)
	}
	if args.TTL <= 0 {
		return ErrInvalidTTL
	}
	if check.IfNil(args.Marshaller) {
		return ErrNilMarshaller
	}

	return nil
}

// GetDecimals returns the number of decimals of the token. Answers are cached for the configured TTL.
func (dp *decimalsProvider) GetDecimals(ctx context.Context, tokenIdentifier string) (uint32, error) {
	if len(tokenIdentifier) == 0 {
		return 0, ErrEmptyTokenIdentifier
	}
	if tokenIdentifier == NativeTokenIdentifier {
		return process.EGLDDecimals, nil
	}

	cached, err := dp.cache.Get(tokenIdentifier)
	if err == nil {
		decimals, ok := cached.(uint32)
		if ok {
			return decimals, nil
		}
	}

	decimals, err := dp.fetchDecimals(ctx, tokenIdentifier)
	if err != nil {
		return 0, err
	}

	err = dp.cache.Set(tokenIdentifier, decimals)
	if err != nil {
		log.Debug("cannot cache token decimals", "token", tokenIdentifier, "error", err)
	}
	log.Trace("fetched token decimals", "token", tokenIdentifier, "decimals", decimals)

	return decimals, nil
}

// fetchDecimals asks for a fungible token first, then for a collection
func (dp *decimalsProvider) fetchDecimals(ctx context.Context, tokenIdentifier string) (uint32, error) {
	response := &tokenResponse{}
	escaped := url.PathEscape(tokenIdentifier)
	err := dp.get(ctx, fmt.Sprintf(tokenPath, escaped), response)
	if errors.Is(err, ErrTokenNotFound) {
		err = dp.get(ctx, fmt.Sprintf(collectionPath, escaped), response)
	}
	if err != nil {
		return 0, fmt.Errorf("%w for token %s", err, tokenIdentifier)
	}

	return response.Decimals, nil
}

func (dp *decimalsProvider) get(ctx context.Context, endpoint string, response interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, dp.apiURL+endpoint, nil)
	if err != nil {
		return err
	}

	httpResponse, err := dp.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = httpResponse.Body.Close()
	}()

	if httpResponse.StatusCode == http.StatusNotFound {
		return ErrTokenNotFound
	}
	if httpResponse.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: http status %d", ErrTokenRequest, httpResponse.StatusCode)
	}

	buff, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return err
	}

	return dp.marshaller.Unmarshal(response, buff)
}

// IsInterfaceNil returns true if there is no value under the interface
func (dp *decimalsProvider) IsInterfaceNil() bool {
	return dp == nil
}
