package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	DB "Backend-Flourish-Campus/src/database"
	"Backend-Flourish-Campus/src/models"
	"Backend-Flourish-Campus/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// cacheTTL อายุของ analytics ใน Redis ต่อ tenant
const cacheTTL = 5 * time.Minute

// GetSurveyAnalytics จุดเข้าเดียวของ analytics — ดึง row sets ทั้งหมดของ tenant
// แล้วคำนวณเป็น object เดียว ผลลัพธ์ cache ใน Redis ตาม slug
// slug ที่ไม่มี tenant ให้ aggregate ว่าง (ศูนย์/nil ทั้งหมด) ไม่ใช่ error เพื่อให้ dashboard render empty state ได้
func GetSurveyAnalytics(ctx context.Context, universitySlug string, skipCache bool) (*models.SurveyAnalytics, error) {
	if !skipCache {
		if cached, ok := utils.GetCachedAnalytics(universitySlug); ok {
			var result models.SurveyAnalytics
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
			// cache เสีย — คำนวณใหม่
		}
	}

	data, err := fetchAnalyticsData(ctx, universitySlug)
	if err != nil {
		return nil, err // data-access failure ส่งต่อให้ caller ไม่ retry
	}

	result := BuildAnalytics(*data)

	if payload, err := json.Marshal(result); err == nil {
		utils.CacheAnalytics(universitySlug, string(payload), cacheTTL)
	}

	return &result, nil
}

// RefreshAnalyticsCache คำนวณใหม่แล้วเขียนทับ cache (เรียกจาก background job หลัง survey จบ)
func RefreshAnalyticsCache(ctx context.Context, universitySlug string) error {
	_, err := GetSurveyAnalytics(ctx, universitySlug, true)
	if err != nil {
		return fmt.Errorf("failed to refresh analytics cache for %s: %w", universitySlug, err)
	}
	log.Printf("✅ Analytics cache refreshed for tenant: %s", universitySlug)
	return nil
}

// fetchAnalyticsData ยิง query อิสระทั้ง 8 ตัวพร้อมกัน (ไม่มี dependency ต่อกัน)
// แล้วค่อย join ในหน่วยความจำหลังทุกตัวเสร็จ
func fetchAnalyticsData(ctx context.Context, slug string) (*AnalyticsData, error) {
	filter := bson.M{"universitySlug": slug}
	data := &AnalyticsData{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// tenant lookup — ใช้แค่ยืนยันว่า slug มีจริง ถ้าไม่มีก็ได้ aggregate ว่างตามปกติ
		var uni models.University
		err := DB.UniversityCollection.FindOne(gctx, bson.M{"slug": slug}).Decode(&uni)
		if err != nil && err != mongo.ErrNoDocuments {
			return fmt.Errorf("failed to look up university: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return fetchAll(gctx, DB.SessionCollection, filter, &data.Sessions, "sessions")
	})
	g.Go(func() error {
		return fetchAll(gctx, DB.FlourishingCollection, filter, &data.Flourishing, "flourishing scores")
	})
	g.Go(func() error {
		return fetchAll(gctx, DB.DemographicsCollection, filter, &data.Demographics, "demographics")
	})
	g.Go(func() error {
		return fetchAll(gctx, DB.SchoolWellbeingCollection, filter, &data.Wellbeing, "school wellbeing")
	})
	g.Go(func() error {
		return fetchAll(gctx, DB.EnablerBarrierCollection, filter, &data.Selections, "enabler/barrier selections")
	})
	g.Go(func() error {
		return fetchAll(gctx, DB.TextResponseCollection, filter, &data.TextResponses, "text responses")
	})
	g.Go(func() error {
		return fetchAll(gctx, DB.TensionCollection, filter, &data.Tensions, "tension assessments")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// fetchAll ดึงทุก row ของ collection ตาม filter ลง slice ที่ส่งมา
func fetchAll[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, out *[]T, what string) error {
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", what, err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return nil
}
