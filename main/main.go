package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/cowslice"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	base := make([]int, 4096)
	for i := range base {
		base[i] = i
	}
	s := cowslice.FromSlice(base)
	for i := 0; i < 10000; i++ {
		c := s.Clone()
		sub := c.Slice(16, 4080)
		sub.Set(0, i) // shared: exercises the divergence copy
		sub.Append(i)
		sub.Release()
		c.Release()
		s.Set(i&4095, i) // exclusive again: in-place path
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
