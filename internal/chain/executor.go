package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/nftperks/raffleport/internal/config"
	"github.com/nftperks/raffleport/internal/domain"
)

// Backend is the slice of ethclient.Client the executor needs, wrapped so
// tests can substitute a fake node.
type Backend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
}

// Executor submits the raffle lifecycle transactions from the admin signer
// and blocks on their receipts. Every mutating method first re-derives ground
// truth with a read call, so a retry after an uncertain failure never
// double-escrows or double-creates.
type Executor struct {
	backend        Backend
	privateKey     *ecdsa.PrivateKey
	from           common.Address
	chainID        *big.Int
	contract       common.Address
	receiptTimeout time.Duration

	raffleABI abi.ABI
	erc721ABI abi.ABI
	erc20ABI  abi.ABI
}

func NewExecutor(cfg *config.Config) (*Executor, error) {
	client, err := ethclient.Dial(cfg.ChainRPC)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain RPC: %w", err)
	}
	return NewExecutorWithBackend(cfg, client)
}

func NewExecutorWithBackend(cfg *config.Config, backend Backend) (*Executor, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.AdminKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin signer key: %w", err)
	}

	parsedRaffle, err := abi.JSON(strings.NewReader(raffleABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse raffle ABI: %w", err)
	}
	parsed721, err := abi.JSON(strings.NewReader(erc721ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc721 ABI: %w", err)
	}
	parsed20, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc20 ABI: %w", err)
	}

	return &Executor{
		backend:        backend,
		privateKey:     privateKey,
		from:           crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID:        big.NewInt(cfg.ChainID),
		contract:       common.HexToAddress(cfg.RaffleContract),
		receiptTimeout: cfg.ReceiptTimeout,
		raffleABI:      parsedRaffle,
		erc721ABI:      parsed721,
		erc20ABI:       parsed20,
	}, nil
}

// EnsurePrizeApproval grants the raffle contract control over the prize
// asset. The current approval state is read first: a retry whose earlier
// approve already landed on-chain is skipped instead of re-submitted.
func (e *Executor) EnsurePrizeApproval(ctx context.Context, raffle *domain.Raffle) (string, bool, error) {
	token := common.HexToAddress(raffle.PrizeTokenAddress)

	if raffle.PrizeNFTID != nil {
		tokenID := big.NewInt(*raffle.PrizeNFTID)

		out, err := e.call(ctx, token, e.erc721ABI, "getApproved", tokenID)
		if err != nil {
			return "", false, err
		}
		approved := out[0].(common.Address)
		if approved == e.contract {
			zap.L().Info("prize NFT already approved, skipping approve tx",
				zap.Int64("raffleID", raffle.ID))
			return "", true, nil
		}

		data, err := e.erc721ABI.Pack("approve", e.contract, tokenID)
		if err != nil {
			return "", false, newError(KindRPC, "", err)
		}
		hash, _, err := e.submitAndWait(ctx, token, data)
		return hash, false, err
	}

	amount := big.NewInt(*raffle.PrizeAmount)

	out, err := e.call(ctx, token, e.erc20ABI, "allowance", e.from, e.contract)
	if err != nil {
		return "", false, err
	}
	allowance := out[0].(*big.Int)
	if allowance.Cmp(amount) >= 0 {
		zap.L().Info("prize token allowance already in place, skipping approve tx",
			zap.Int64("raffleID", raffle.ID))
		return "", true, nil
	}

	// Some tokens reject approve on a non-zero allowance, so reset first.
	if allowance.Sign() > 0 {
		data, err := e.erc20ABI.Pack("approve", e.contract, big.NewInt(0))
		if err != nil {
			return "", false, newError(KindRPC, "", err)
		}
		if _, _, err := e.submitAndWait(ctx, token, data); err != nil {
			return "", false, err
		}
	}

	data, err := e.erc20ABI.Pack("approve", e.contract, amount)
	if err != nil {
		return "", false, newError(KindRPC, "", err)
	}
	hash, _, err := e.submitAndWait(ctx, token, data)
	return hash, false, err
}

// CreateAndActivate registers the raffle on-chain and makes it live in a
// single call. Skips submission when the raffle already exists on-chain.
func (e *Executor) CreateAndActivate(ctx context.Context, raffle *domain.Raffle) (string, bool, error) {
	out, err := e.call(ctx, e.contract, e.raffleABI, "isCreated", big.NewInt(raffle.ID))
	if err != nil {
		return "", false, err
	}
	if out[0].(bool) {
		zap.L().Info("raffle already created on-chain, skipping create tx",
			zap.Int64("raffleID", raffle.ID))
		return "", true, nil
	}

	tokenID := big.NewInt(0)
	amount := big.NewInt(0)
	if raffle.PrizeNFTID != nil {
		tokenID = big.NewInt(*raffle.PrizeNFTID)
	}
	if raffle.PrizeAmount != nil {
		amount = big.NewInt(*raffle.PrizeAmount)
	}

	data, err := e.raffleABI.Pack("createAndActivate",
		big.NewInt(raffle.ID),
		common.HexToAddress(raffle.PrizeTokenAddress),
		tokenID,
		amount,
		big.NewInt(raffle.EndDate.Unix()),
	)
	if err != nil {
		return "", false, newError(KindRPC, "", err)
	}
	hash, _, err := e.submitAndWait(ctx, e.contract, data)
	return hash, false, err
}

// EndRaffle performs winner selection (weighted by ticket count) and prize
// transfer. If the raffle is already settled on-chain from an earlier
// uncertain run, the recorded winner is returned without a new submission.
// A nil winner means the contract settled with no participants.
func (e *Executor) EndRaffle(ctx context.Context, raffleID int64, participants []domain.Participant) (string, *string, error) {
	out, err := e.call(ctx, e.contract, e.raffleABI, "settlement", big.NewInt(raffleID))
	if err != nil {
		return "", nil, err
	}
	if out[0].(bool) {
		zap.L().Info("raffle already settled on-chain, skipping end tx",
			zap.Int64("raffleID", raffleID))
		return "", winnerOrNil(out[1].(common.Address)), nil
	}

	addresses := make([]common.Address, len(participants))
	counts := make([]*big.Int, len(participants))
	for i, p := range participants {
		addresses[i] = common.HexToAddress(p.WalletAddress)
		counts[i] = big.NewInt(int64(p.TicketCount))
	}

	data, err := e.raffleABI.Pack("endRaffle", big.NewInt(raffleID), addresses, counts)
	if err != nil {
		return "", nil, newError(KindRPC, "", err)
	}
	hash, receipt, err := e.submitAndWait(ctx, e.contract, data)
	if err != nil {
		return hash, nil, err
	}
	return hash, e.winnerFromReceipt(receipt), nil
}

func (e *Executor) winnerFromReceipt(receipt *types.Receipt) *string {
	endedID := e.raffleABI.Events["RaffleEnded"].ID
	for _, lg := range receipt.Logs {
		if len(lg.Topics) == 0 || lg.Topics[0] != endedID {
			continue
		}
		values, err := e.raffleABI.Unpack("RaffleEnded", lg.Data)
		if err != nil {
			zap.L().Warn("failed to unpack RaffleEnded event", zap.Error(err))
			continue
		}
		return winnerOrNil(values[0].(common.Address))
	}
	return nil
}

func winnerOrNil(addr common.Address) *string {
	if addr == (common.Address{}) {
		return nil
	}
	s := strings.ToLower(addr.Hex())
	return &s
}

func (e *Executor) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...any) ([]any, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, newError(KindRPC, "", err)
	}
	raw, err := e.backend.CallContract(ctx, ethereum.CallMsg{From: e.from, To: &to, Data: data}, nil)
	if err != nil {
		return nil, newError(KindRPC, "", fmt.Errorf("%s call failed: %w", method, err))
	}
	out, err := contractABI.Unpack(method, raw)
	if err != nil {
		return nil, newError(KindRPC, "", fmt.Errorf("%s result unpack failed: %w", method, err))
	}
	return out, nil
}

// submitAndWait signs and broadcasts a call, then blocks until it is mined.
// A receipt-wait timeout keeps the tx hash in the returned error: it is not
// proof the effect did not land, and a retry must check ground truth first.
func (e *Executor) submitAndWait(ctx context.Context, to common.Address, data []byte) (string, *types.Receipt, error) {
	nonce, err := e.backend.PendingNonceAt(ctx, e.from)
	if err != nil {
		return "", nil, newError(KindRPC, "", fmt.Errorf("failed to fetch nonce: %w", err))
	}
	gasPrice, err := e.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", nil, newError(KindRPC, "", fmt.Errorf("failed to fetch gas price: %w", err))
	}
	gas, err := e.backend.EstimateGas(ctx, ethereum.CallMsg{From: e.from, To: &to, Data: data})
	if err != nil {
		// Estimation executes the call; a failure here is a revert surfaced
		// before broadcast.
		return "", nil, newError(KindRevert, "", err)
	}

	tx := types.NewTransaction(nonce, to, big.NewInt(0), gas, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(e.chainID), e.privateKey)
	if err != nil {
		return "", nil, newError(KindRejected, "", err)
	}
	txHash := signed.Hash().Hex()

	if err := e.backend.SendTransaction(ctx, signed); err != nil {
		// Ethereum JSON RPC has no error codes, so classification is by
		// message. "already known" is a duplicate broadcast and counts as
		// submitted.
		switch {
		case strings.Contains(err.Error(), "already known"):
		case strings.Contains(err.Error(), "insufficient funds"):
			return "", nil, newError(KindInsufficientFunds, "", err)
		default:
			return "", nil, newError(KindRPC, "", err)
		}
	}

	zap.L().Info("transaction submitted, waiting for receipt",
		zap.String("txHash", txHash), zap.String("to", to.Hex()))

	waitCtx, cancel := context.WithTimeout(ctx, e.receiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, e.backend, signed)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return txHash, nil, newError(KindTimeout, txHash,
				fmt.Errorf("receipt wait timed out after %s", e.receiptTimeout))
		}
		return txHash, nil, newError(KindRPC, txHash, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return txHash, nil, newError(KindRevert, txHash, errors.New("transaction reverted"))
	}
	return txHash, receipt, nil
}
