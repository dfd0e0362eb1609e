package seqlock

import (
	"sync"
	"testing"
)

func TestSeqLockOptimisticReadValidatesWhenUncontended(t *testing.T) {
	var l SeqLock
	stamp, ok := l.TryOptimisticRead()
	if !ok {
		t.Fatal("expected an even (unlocked) initial stamp")
	}
	if !l.Validate(stamp) {
		t.Fatal("expected validation to succeed with no intervening writer")
	}
}

func TestSeqLockWriterMakesStampOdd(t *testing.T) {
	var l SeqLock
	l.Lock()
	if _, ok := l.TryOptimisticRead(); ok {
		t.Fatal("expected an odd (locked) stamp while a writer holds the lock")
	}
	l.Unlock()
	if _, ok := l.TryOptimisticRead(); !ok {
		t.Fatal("expected an even stamp again after Unlock")
	}
}

func TestSeqLockValidateFailsAcrossAWrite(t *testing.T) {
	var l SeqLock
	stamp, _ := l.TryOptimisticRead()
	l.Lock()
	l.Unlock()
	if l.Validate(stamp) {
		t.Fatal("expected Validate to fail once a write completed after the read's stamp")
	}
}

func TestSeqLockSerializesWriters(t *testing.T) {
	var l SeqLock
	var mu sync.Mutex
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Lock()
			mu.Lock()
			counter++
			mu.Unlock()
			l.Unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 writes, got %d", counter)
	}
}
