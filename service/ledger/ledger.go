package ledger

import (
	"context"
	"sync"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/client/v2/common"
	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/asaskevich/govalidator"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/generic"
	"github.com/zyedidia/generic/cache"
)

type Config struct {
	Endpoint string `valid:"requrl,required"`
	APIKey   string
}

func New(cfg Config) core.LedgerClient {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	var headers []*common.Header
	if cfg.APIKey != "" {
		headers = append(headers, &common.Header{Key: core.APIKeyHeader, Value: cfg.APIKey})
	}

	return &service{
		client: generic.Must(algod.MakeClientWithHeaders(cfg.Endpoint, "", headers)),
		assets: cache.New[uint64, *core.Asset](1024),
	}
}

type service struct {
	client *algod.Client

	// asset parameters are immutable once created
	assets *cache.Cache[uint64, *core.Asset]
	mux    sync.Mutex
}

func (s *service) AccountInformation(ctx context.Context, address string) (*core.Account, error) {
	info, err := s.client.AccountInformation(address).Do(ctx)
	if err != nil {
		return nil, err
	}

	return convertAccount(info), nil
}

func (s *service) AssetByID(ctx context.Context, id uint64) (*core.Asset, error) {
	s.mux.Lock()
	v, ok := s.assets.Get(id)
	s.mux.Unlock()
	if ok {
		return v, nil
	}

	asset, err := s.client.GetAssetByID(id).Do(ctx)
	if err != nil {
		return nil, err
	}

	v = convertAsset(asset)

	s.mux.Lock()
	s.assets.Put(v.ID, v)
	s.mux.Unlock()

	return v, nil
}

func (s *service) SuggestedParams(ctx context.Context) (types.SuggestedParams, error) {
	return s.client.SuggestedParams().Do(ctx)
}

func convertAccount(info models.Account) *core.Account {
	account := &core.Account{
		Address: info.Address,
		Amount:  info.Amount,
	}

	for _, h := range info.Assets {
		account.Assets = append(account.Assets, &core.Holding{
			AssetID: h.AssetId,
			Amount:  h.Amount,
			Frozen:  h.IsFrozen,
		})
	}

	return account
}

func convertAsset(asset models.Asset) *core.Asset {
	return &core.Asset{
		ID:       asset.Index,
		Name:     asset.Params.Name,
		UnitName: asset.Params.UnitName,
		Total:    asset.Params.Total,
		Decimals: asset.Params.Decimals,
		Creator:  asset.Params.Creator,
		URL:      asset.Params.Url,
	}
}
