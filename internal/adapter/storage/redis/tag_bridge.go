package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"tagpay/internal/core/domain"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// TagBridge implements ports.TagStore against a physical reader agent that
// speaks Redis lists. Each operation RPUSHes a command onto the reader's
// queue and BLPOPs the per-command reply key; the block models waiting for a
// token to be presented, and the ctx deadline is the only way out.
//
// Reply envelope statuses:
//
//	payload - token present, raw payload attached
//	absent  - reader timed out without a token in range
//	ok      - write landed on the token
//	error   - reader-side failure, detail in the error field
type TagBridge struct {
	client   *goredis.Client
	codec    ports.TagCodec
	readerID string
	log      zerolog.Logger

	// One in-flight command per reader; the session layer is sequential
	// but the HTTP layer above it is not.
	mu sync.Mutex
}

type bridgeCommand struct {
	Op       string `json:"op"` // read | write
	Payload  string `json:"payload,omitempty"`
	ReplyKey string `json:"reply_key"`
}

type bridgeReply struct {
	Status  string `json:"status"`
	Payload string `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewTagBridge creates a TagStore bridged to the given reader agent.
func NewTagBridge(client *goredis.Client, codec ports.TagCodec, readerID string, log zerolog.Logger) *TagBridge {
	return &TagBridge{
		client:   client,
		codec:    codec,
		readerID: readerID,
		log:      log,
	}
}

func (b *TagBridge) commandKey() string {
	return "tagbridge:" + b.readerID + ":cmd"
}

func (b *TagBridge) roundTrip(ctx context.Context, cmd bridgeCommand) (*bridgeReply, error) {
	cmd.ReplyKey = fmt.Sprintf("tagbridge:%s:reply:%s", b.readerID, uuid.NewString())

	raw, err := json.Marshal(cmd)
	if err != nil {
		return nil, apperror.ErrAdapter(err)
	}

	if err := b.client.RPush(ctx, b.commandKey(), raw).Err(); err != nil {
		return nil, apperror.ErrAdapter(fmt.Errorf("pushing reader command: %w", err))
	}

	// Blocks until the reader answers or ctx expires.
	res, err := b.client.BLPop(ctx, 0, cmd.ReplyKey).Result()
	if err != nil {
		return nil, apperror.ErrAdapter(fmt.Errorf("awaiting reader reply: %w", err))
	}

	var reply bridgeReply
	if err := json.Unmarshal([]byte(res[1]), &reply); err != nil {
		return nil, apperror.ErrAdapter(fmt.Errorf("decoding reader reply: %w", err))
	}
	return &reply, nil
}

// AcquireAndRead blocks until the reader reports a token, then decodes its
// payload.
func (b *TagBridge) AcquireAndRead(ctx context.Context) (*domain.TagRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	reply, err := b.roundTrip(ctx, bridgeCommand{Op: "read"})
	if err != nil {
		return nil, err
	}

	switch reply.Status {
	case "absent":
		return nil, apperror.ErrTagAbsent()
	case "error":
		return nil, apperror.ErrAdapter(errors.New(reply.Error))
	case "payload":
		record, err := b.codec.Decode([]byte(reply.Payload))
		if err != nil {
			// A blank token reads as absent; anything undecodable is a
			// reader-level failure from the session's point of view.
			if apperror.HasCode(err, apperror.CodePayloadEmpty) {
				return nil, apperror.ErrTagAbsent()
			}
			return nil, apperror.ErrAdapter(err)
		}
		return record, nil
	default:
		return nil, apperror.ErrAdapter(fmt.Errorf("unknown reader reply status %q", reply.Status))
	}
}

// AcquireAndWrite blocks until the reader reports a token, then writes the
// encoded record to it.
func (b *TagBridge) AcquireAndWrite(ctx context.Context, record *domain.TagRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	payload, err := b.codec.Encode(record)
	if err != nil {
		return err
	}

	reply, err := b.roundTrip(ctx, bridgeCommand{Op: "write", Payload: string(payload)})
	if err != nil {
		return err
	}

	switch reply.Status {
	case "ok":
		return nil
	case "absent":
		return apperror.ErrAdapter(errors.New("token left range before write completed"))
	case "error":
		return apperror.ErrAdapter(errors.New(reply.Error))
	default:
		return apperror.ErrAdapter(fmt.Errorf("unknown reader reply status %q", reply.Status))
	}
}
