package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/QuangTung97/promo-pricing/config"
	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/pkg/memtable"
	"github.com/QuangTung97/promo-pricing/repository"
	"github.com/QuangTung97/promo-pricing/service/admin"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type seedOptions struct {
	numCategories int
	numProducts   int
	numCampaigns  int
}

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchInMemoryCommand(),
		seedDataCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func seedCampaign(i int, opts seedOptions, now time.Time) model.Campaign {
	c := model.Campaign{
		ID:                 int64(i + 1),
		Name:               fmt.Sprintf("campaign %d", i+1),
		DiscountType:       model.DiscountTypePercentage,
		DiscountValue:      decimal.NewFromInt(int64(5 + i%30)),
		StartAt:            now.Add(-time.Duration(i%5) * time.Hour),
		EndAt:              now.Add(time.Duration(1+i%7) * 24 * time.Hour),
		IsActive:           i%10 != 0,
		CampaignCategoryID: 1,
	}
	if i%2 == 1 {
		c.DiscountType = model.DiscountTypeFixed
		c.DiscountValue = decimal.NewFromInt(int64(1 + i%20))
	}
	if i%3 != 0 {
		c.TargetCategoryIDs = []int64{int64(1 + i%opts.numCategories)}
	}
	return c
}

func seedInMemory(opts seedOptions, now time.Time) (*pricing.Catalog, *pricing.Store) {
	categories := make([]model.ProductCategory, 0, opts.numCategories)
	for i := 0; i < opts.numCategories; i++ {
		categories = append(categories, model.ProductCategory{
			ID:   int64(i + 1),
			Name: fmt.Sprintf("category %d", i+1),
		})
	}

	products := make([]model.Product, 0, opts.numProducts)
	for i := 0; i < opts.numProducts; i++ {
		products = append(products, model.Product{
			ID:         int64(i + 1),
			Name:       fmt.Sprintf("product %d", i+1),
			CategoryID: int64(1 + i%opts.numCategories),
			BasePrice:  decimal.NewFromInt(int64(10 + i%500)),
		})
	}

	campaigns := make([]model.Campaign, 0, opts.numCampaigns)
	for i := 0; i < opts.numCampaigns; i++ {
		campaigns = append(campaigns, seedCampaign(i, opts, now))
	}

	catalog := pricing.NewCatalog()
	if err := catalog.Replace(categories, products); err != nil {
		panic(err)
	}
	store := pricing.NewStore()
	if err := store.Replace(campaigns); err != nil {
		panic(err)
	}
	return catalog, store
}

func benchInMemory(opts seedOptions, withCache bool, numThreads int, numElements int) {
	fmt.Println("PRODUCTS:", opts.numProducts, "CAMPAIGNS:", opts.numCampaigns, "CACHE:", withCache)

	catalog, store := seedInMemory(opts, time.Now())

	options := []pricing.Option{
		pricing.WithClock(pricing.NewSystemClock()),
	}
	if withCache {
		options = append(options, pricing.WithPriceCache(memtable.New(8*1024*1024)))
	}
	engine := pricing.NewEngine(catalog, store, options...)

	durations := make([][]time.Duration, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				productID := int64(1 + (threadIndex*numElements+i)%opts.numProducts)

				start := time.Now()
				_, err := engine.GetEffectivePrice(context.Background(), productID)
				if err != nil {
					fmt.Println(productID, err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	computeReport(durations).print(os.Stdout)
}

func benchInMemoryCommand() *cobra.Command {
	opts := seedOptions{}
	var withCache bool
	var numThreads int
	var numElements int

	cmd := &cobra.Command{
		Use:   "memory",
		Short: "benchmark GetEffectivePrice on in-memory snapshots",
		Run: func(cmd *cobra.Command, args []string) {
			benchInMemory(opts, withCache, numThreads, numElements)
		},
	}

	cmd.Flags().IntVar(&opts.numCategories, "categories", 50, "number of product categories")
	cmd.Flags().IntVar(&opts.numProducts, "products", 10000, "number of products")
	cmd.Flags().IntVar(&opts.numCampaigns, "campaigns", 500, "number of campaigns")
	cmd.Flags().BoolVar(&withCache, "cache", true, "enable the price cache")
	cmd.Flags().IntVar(&numThreads, "threads", 50, "number of goroutines")
	cmd.Flags().IntVar(&numElements, "requests", 2000, "number of requests per goroutine")
	return cmd
}

func seedData(opts seedOptions) {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	db := conf.MySQL.MustConnect(logger)

	provider := repository.NewProvider(db)
	campaignRepo := repository.NewCampaign()
	categoryRepo := repository.NewCategory()
	productRepo := repository.NewProduct()

	catalog := pricing.NewCatalog()
	store := pricing.NewStore()
	clock := pricing.NewSystemClock()

	service := admin.NewService(
		provider, campaignRepo, categoryRepo, productRepo,
		catalog, store, clock, logger,
	)

	ctx := context.Background()

	campaignCategory, err := service.CreateCampaignCategory(ctx, admin.CampaignCategoryInput{
		Name:        "bench",
		Description: "campaigns created by the bench tool",
	})
	if err != nil {
		panic(err)
	}

	categoryIDs := make([]int64, 0, opts.numCategories)
	for i := 0; i < opts.numCategories; i++ {
		category, err := service.CreateProductCategory(ctx, fmt.Sprintf("bench category %d", i+1))
		if err != nil {
			panic(err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	for i := 0; i < opts.numProducts; i++ {
		_, err := service.CreateProduct(ctx, admin.ProductInput{
			Name:       fmt.Sprintf("bench product %d", i+1),
			CategoryID: categoryIDs[i%len(categoryIDs)],
			BasePrice:  decimal.NewFromInt(int64(10 + i%500)),
		})
		if err != nil {
			panic(err)
		}
	}

	now := clock.Now()
	for i := 0; i < opts.numCampaigns; i++ {
		c := seedCampaign(i, opts, now)

		var targets []int64
		for _, id := range c.TargetCategoryIDs {
			targets = append(targets, categoryIDs[id-1])
		}

		_, err := service.CreateCampaign(ctx, admin.CampaignInput{
			Name:               c.Name,
			DiscountType:       c.DiscountType.String(),
			DiscountValue:      c.DiscountValue,
			StartAt:            c.StartAt,
			EndAt:              c.EndAt,
			IsActive:           c.IsActive,
			CampaignCategoryID: campaignCategory.ID,
			TargetCategoryIDs:  targets,
		})
		if err != nil {
			panic(err)
		}
	}

	logger.Info("seed finished",
		zap.Int("categories", opts.numCategories),
		zap.Int("products", opts.numProducts),
		zap.Int("campaigns", opts.numCampaigns),
	)
}

func seedDataCommand() *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "seed the database through the admin service",
		Run: func(cmd *cobra.Command, args []string) {
			seedData(opts)
		},
	}

	cmd.Flags().IntVar(&opts.numCategories, "categories", 50, "number of product categories")
	cmd.Flags().IntVar(&opts.numProducts, "products", 1000, "number of products")
	cmd.Flags().IntVar(&opts.numCampaigns, "campaigns", 100, "number of campaigns")
	return cmd
}
