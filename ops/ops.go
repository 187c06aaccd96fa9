package ops

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/outofforest/logger"

	"github.com/outofforest/container/list"
)

// Type defines the operation applied to the list.
type Type string

// Operation types.
const (
	InsertAtStart Type = "insert-start"
	InsertAtEnd   Type = "insert-end"
	InsertAfter   Type = "insert-after"
	Pop           Type = "pop"
	Remove        Type = "remove"
	RemoveAll     Type = "remove-all"
)

var knownTypes = []Type{InsertAtStart, InsertAtEnd, InsertAfter, Pop, Remove, RemoveAll}

// Op is the single step of the script.
type Op struct {
	Type Type

	// Position is used by Pop.
	Position int

	// Target is the value after which InsertAfter inserts.
	Target int

	// Value is inserted or removed.
	Value int
}

func (o Op) String() string {
	switch o.Type {
	case Pop:
		return string(o.Type) + ":" + strconv.Itoa(o.Position)
	case InsertAfter:
		return string(o.Type) + ":" + strconv.Itoa(o.Target) + "=" + strconv.Itoa(o.Value)
	default:
		return string(o.Type) + ":" + strconv.Itoa(o.Value)
	}
}

// Parse parses operation in the form of "type:argument".
// InsertAfter takes argument in the form of "target=value".
func Parse(s string) (Op, error) {
	name, arg, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Op{}, errors.Errorf("operation %q has no argument", s)
	}

	op := Op{Type: Type(name)}
	if !lo.Contains(knownTypes, op.Type) {
		return Op{}, errors.Errorf("unknown operation %q", name)
	}

	var err error
	switch op.Type {
	case Pop:
		op.Position, err = strconv.Atoi(arg)
	case InsertAfter:
		target, value, ok := strings.Cut(arg, "=")
		if !ok {
			return Op{}, errors.Errorf("operation %q requires argument in the form of target=value", s)
		}
		if op.Target, err = strconv.Atoi(target); err != nil {
			break
		}
		op.Value, err = strconv.Atoi(value)
	default:
		op.Value, err = strconv.Atoi(arg)
	}
	if err != nil {
		return Op{}, errors.Wrapf(err, "invalid argument of operation %q", s)
	}

	return op, nil
}

// ParseAll parses all the operations.
func ParseAll(ss []string) ([]Op, error) {
	ops := make([]Op, 0, len(ss))
	for _, s := range ss {
		op, err := Parse(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Apply applies operations to the list in order.
func Apply(ctx context.Context, l *list.List[int], ops ...Op) error {
	log := logger.Get(ctx)
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		switch op.Type {
		case InsertAtStart:
			l.InsertAtStart(op.Value)
			log.Debug("Value inserted at start", zap.Int("value", op.Value))
		case InsertAtEnd:
			l.InsertAtEnd(op.Value)
			log.Debug("Value inserted at end", zap.Int("value", op.Value))
		case InsertAfter:
			if !l.InsertAfterValue(op.Target, op.Value) {
				log.Info("Target value does not exist, nothing inserted", zap.Int("target", op.Target))
				continue
			}
			log.Debug("Value inserted", zap.Int("target", op.Target), zap.Int("value", op.Value))
		case Pop:
			v, ok := l.Pop(op.Position)
			if !ok {
				log.Info("Position does not exist, nothing popped", zap.Int("position", op.Position))
				continue
			}
			log.Info("Value popped", zap.Int("position", op.Position), zap.Int("value", v))
		case Remove:
			if !l.Remove(op.Value) {
				log.Info("Value does not exist, nothing removed", zap.Int("value", op.Value))
				continue
			}
			log.Debug("Value removed", zap.Int("value", op.Value))
		case RemoveAll:
			log.Debug("Values removed", zap.Int("value", op.Value), zap.Int("count", l.RemoveAll(op.Value)))
		default:
			return errors.Errorf("unknown operation %q", op.Type)
		}
	}

	return nil
}
