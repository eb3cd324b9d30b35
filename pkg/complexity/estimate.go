package complexity

import (
	"fmt"
	"math"

	"github.com/aretw0/algotrace/pkg/domain"
)

// EstimateOperations returns best/average/worst operation counts for an input of size n.
func EstimateOperations(id domain.AlgorithmID, n int) (domain.OperationEstimate, error) {
	if _, ok := table[id]; !ok {
		return domain.OperationEstimate{}, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, id)
	}
	if n <= 0 {
		return domain.OperationEstimate{}, fmt.Errorf("%w: %d", domain.ErrInvalidArraySize, n)
	}

	switch id {
	case domain.Bubble, domain.Insertion:
		return domain.OperationEstimate{Best: n, Average: halfSquare(n), Worst: n * n}, nil
	case domain.Selection:
		return domain.OperationEstimate{Best: n * n, Average: n * n, Worst: n * n}, nil
	case domain.Quick:
		return domain.OperationEstimate{Best: nLogN(n), Average: nLogN(n), Worst: n * n}, nil
	case domain.Merge:
		return domain.OperationEstimate{Best: nLogN(n), Average: nLogN(n), Worst: nLogN(n)}, nil
	case domain.Linear:
		return domain.OperationEstimate{Best: 1, Average: n / 2, Worst: n}, nil
	default: // domain.Binary
		return domain.OperationEstimate{Best: 1, Average: logN(n), Worst: logN(n)}, nil
	}
}

func halfSquare(n int) int {
	return (n * n) / 2
}

func nLogN(n int) int {
	if n <= 1 {
		return n
	}
	return int(float64(n) * math.Log2(float64(n)))
}

func logN(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Log2(float64(n)))
}
